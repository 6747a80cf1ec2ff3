package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// newTestResume returns a minimal resume that passes validation. Tests mutate
// the returned value to provoke specific violations.
func newTestResume() *Resume {
	return &Resume{
		Contact: Contact{
			Email: "jane@example.com",
			Name:  "Jane Doe",
			Phone: "555.555.5555",
			Address: Address{
				City:  "Springfield",
				State: "IL",
			},
		},
		Summary: "Seasoned platform engineer.",
		Education: []EducationEntry{
			{
				Degree:      "BS Computer Science",
				GPA:         3.5,
				Institution: "State University",
				Location:    "Springfield, IL",
				Active:      true,
			},
		},
		Experience: []ExperienceEntry{
			{
				Institution: "Initech",
				Title:       "Software Engineer",
				Start:       "2019",
				Location:    "Austin, TX",
				Summary:     "Built internal tooling.",
			},
		},
		Skills: NewSkillGroups(
			SkillPair{Name: "languages", Group: SkillGroup{Rank: 1, Entries: []string{"Go", "Python"}}},
			SkillPair{Name: "tools", Group: SkillGroup{Rank: 2, Entries: []string{"Docker"}}},
		),
	}
}

func TestResumeValidate_Valid(t *testing.T) {
	assert.NoError(t, newTestResume().Validate())
}

func TestResumeValidate_DuplicateRanks(t *testing.T) {
	resume := newTestResume()
	resume.Skills = NewSkillGroups(
		SkillPair{Name: "spam", Group: SkillGroup{Rank: 1, Entries: []string{"a"}}},
		SkillPair{Name: "waffles", Group: SkillGroup{Rank: 2, Entries: []string{"b"}}},
		SkillPair{Name: "dosa", Group: SkillGroup{Rank: 1, Entries: []string{"c"}}},
		SkillPair{Name: "bulgogi", Group: SkillGroup{Rank: 5, Entries: []string{"d"}}},
	)

	err := resume.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Only the colliding rank is reported, first-seen category first; the
	// non-colliding categories stay out of the report.
	assert.Equal(t, map[int][]string{1: {"spam", "dosa"}}, verr.DuplicateRanks)
	assert.Empty(t, verr.Fields)
	assert.Contains(t, verr.Error(), "rank 1 assigned to spam, dosa")
}

func TestResumeValidate_ThreeWayRankCollision(t *testing.T) {
	resume := newTestResume()
	resume.Skills = NewSkillGroups(
		SkillPair{Name: "first", Group: SkillGroup{Rank: 4}},
		SkillPair{Name: "second", Group: SkillGroup{Rank: 4}},
		SkillPair{Name: "third", Group: SkillGroup{Rank: 4}},
	)

	var verr *ValidationError
	require.ErrorAs(t, resume.Validate(), &verr)
	assert.Equal(t, map[int][]string{4: {"first", "second", "third"}}, verr.DuplicateRanks)
}

func TestResumeValidate_CollectsEveryViolation(t *testing.T) {
	resume := newTestResume()
	resume.Contact.Email = "not-an-email"
	resume.Contact.Phone = "555.555.555"
	resume.Skills = NewSkillGroups(
		SkillPair{Name: "spam", Group: SkillGroup{Rank: 1}},
		SkillPair{Name: "dosa", Group: SkillGroup{Rank: 1}},
	)

	var verr *ValidationError
	require.ErrorAs(t, resume.Validate(), &verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, fieldErr := range verr.Fields {
		fields = append(fields, fieldErr.Field)
	}
	assert.Contains(t, fields, "contact.email")
	assert.Contains(t, fields, "contact.phone")
	assert.Equal(t, map[int][]string{1: {"spam", "dosa"}}, verr.DuplicateRanks)
}

func TestResumeValidate_MissingRequiredFields(t *testing.T) {
	resume := &Resume{}

	var verr *ValidationError
	require.ErrorAs(t, resume.Validate(), &verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, fieldErr := range verr.Fields {
		fields = append(fields, fieldErr.Field)
	}
	assert.Contains(t, fields, "contact.email")
	assert.Contains(t, fields, "contact.name")
	assert.Contains(t, fields, "contact.phone")
	assert.Contains(t, fields, "contact.address.city")
	assert.Contains(t, fields, "contact.address.state")
	assert.Contains(t, fields, "summary")
}

func TestResumeValidate_NestedEntryFieldPaths(t *testing.T) {
	resume := newTestResume()
	resume.Experience[0].Title = ""
	resume.Education[0].Degree = ""

	var verr *ValidationError
	require.ErrorAs(t, resume.Validate(), &verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, fieldErr := range verr.Fields {
		fields = append(fields, fieldErr.Field)
	}
	assert.Contains(t, fields, "experience[0].title")
	assert.Contains(t, fields, "education[0].degree")
}

func TestValidationError_RanksRenderInAscendingOrder(t *testing.T) {
	verr := &ValidationError{
		DuplicateRanks: map[int][]string{
			7: {"c", "d"},
			1: {"a", "b"},
		},
	}

	msg := verr.Error()
	assert.Less(t, strings.Index(msg, "rank 1"), strings.Index(msg, "rank 7"))
}

func TestResume_UnmarshalYAML_FullDocument(t *testing.T) {
	doc := []byte(`
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
    highlights:
      - Shipped the TPS report pipeline.
skills:
  languages:
    rank: 1
    entries: [Go, Python]
  tools:
    rank: 2
    entries: [Docker]
`)

	var resume Resume
	require.NoError(t, yaml.Unmarshal(doc, &resume))
	require.NoError(t, resume.Validate())

	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.True(t, resume.Education[0].Active)
	assert.Nil(t, resume.Education[0].Minor)
	assert.Equal(t, []string{"languages", "tools"}, resume.Skills.Names())
	assert.Nil(t, resume.Charts)
}
