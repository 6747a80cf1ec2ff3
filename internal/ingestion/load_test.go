package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-renderer/internal/types"
)

const validYamlResume = `
contact:
  email: jane@example.com
  name: Jane Doe
  phone: (555) 555 5555
  address:
    city: Springfield
    state: IL
summary: Seasoned platform engineer.
education:
  - degree: BS Computer Science
    gpa: 3.5
    institution: State University
    location: Springfield, IL
    minor: null
experience:
  - institution: Initech
    title: Software Engineer
    start: "2019"
    location: Austin, TX
    summary: Built internal tooling.
skills:
  tools:
    rank: 2
    entries: [Docker]
  languages:
    rank: 1
    entries: [Go, Python]
`

func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResume_ValidYAML(t *testing.T) {
	resume, err := LoadResume(writeResume(t, "resume.yml", validYamlResume))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.True(t, resume.Education[0].Active)

	// Category order follows the document, not rank or lexical order.
	assert.Equal(t, []string{"tools", "languages"}, resume.Skills.Names())
}

func TestLoadResume_ValidJSON(t *testing.T) {
	jsonResume := `{
  "contact": {
    "email": "jane@example.com",
    "name": "Jane Doe",
    "phone": "555.555.5555",
    "address": {"city": "Springfield", "state": "IL"}
  },
  "summary": "Seasoned platform engineer.",
  "education": [
    {"degree": "BS Computer Science", "gpa": 3.5, "institution": "State University", "location": "Springfield, IL", "minor": null}
  ],
  "experience": [
    {"institution": "Initech", "title": "Software Engineer", "start": "2019", "location": "Austin, TX", "summary": "Built internal tooling."}
  ],
  "skills": {
    "languages": {"rank": 1, "entries": ["Go"]}
  }
}`

	resume, err := LoadResume(writeResume(t, "resume.json", jsonResume))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.Equal(t, []string{"languages"}, resume.Skills.Names())
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := LoadResume(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestLoadResume_MalformedDocument(t *testing.T) {
	_, err := LoadResume(writeResume(t, "resume.yml", "contact: [unclosed"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadResume_SchemaViolationSurfacesAsValidationError(t *testing.T) {
	missingMinor := `
contact:
  email: jane@example.com
  name: Jane Doe
  phone: 555.555.5555
  address:
    city: Springfield
    state: IL
summary: Seasoned platform engineer.
education:
  - degree: BS Computer Science
    gpa: 3.5
    institution: State University
    location: Springfield, IL
experience: []
skills: {}
`

	_, err := LoadResume(writeResume(t, "resume.yml", missingMinor))
	require.Error(t, err)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "minor is required")
}

func TestLoadResume_SemanticViolationSurfacesAsValidationError(t *testing.T) {
	duplicateRanks := `
contact:
  email: jane@example.com
  name: Jane Doe
  phone: 555.555.5555
  address:
    city: Springfield
    state: IL
summary: Seasoned platform engineer.
education: []
experience: []
skills:
  spam:
    rank: 1
    entries: [a]
  waffles:
    rank: 2
    entries: [b]
  dosa:
    rank: 1
    entries: [c]
  bulgogi:
    rank: 5
    entries: [d]
`

	_, err := LoadResume(writeResume(t, "resume.yml", duplicateRanks))
	require.Error(t, err)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[int][]string{1: {"spam", "dosa"}}, verr.DuplicateRanks)
}

func TestParseResume_NoValidationErrorIsRecovered(t *testing.T) {
	// A document that fails both phases reports the schema phase first and
	// stops; nothing attempts a partial decode.
	broken := `
summary: 42
`
	_, err := ParseResume([]byte(broken))
	require.Error(t, err)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)
}
