package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_renderer binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_renderer"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeValidResume writes a minimal valid resume document into dir and
// returns its path.
func writeValidResume(t *testing.T, dir string) string {
	t.Helper()
	document := `contact:
  email: jane@example.com
  name: Jane Doe
  phone: 555.555.5555
  address:
    city: Springfield
    state: IL
summary: Seasoned platform engineer.
education:
  - degree: BS Computer Science
    institution: State University
    location: Springfield, IL
    gpa: 3.5
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
    entries:
      - Go
      - Python
  tools:
    rank: 2
    entries:
      - Docker
`
	path := filepath.Join(dir, "resume.yml")
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		t.Fatalf("failed to write resume fixture: %v", err)
	}
	return path
}
