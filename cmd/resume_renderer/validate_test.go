package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_NoArgs(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "requires at least 1 arg")
}

func TestValidateCommand_ValidFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath := writeValidResume(t, t.TempDir())

	cmd := exec.Command(binaryPath, "validate", resumePath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "valid (Jane Doe)")
}

func TestValidateCommand_InvalidPhone(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumePath := writeValidResume(t, tmpDir)

	content, err := os.ReadFile(resumePath)
	require.NoError(t, err)
	// A stray opening parenthesis makes the phone invalid.
	broken := strings.Replace(string(content), "555.555.5555", "(555 555 5555", 1)
	brokenPath := filepath.Join(tmpDir, "broken.yml")
	require.NoError(t, os.WriteFile(brokenPath, []byte(broken), 0644))

	cmd := exec.Command(binaryPath, "validate", brokenPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "contact.phone")
	assert.Contains(t, string(output), "failed validation")
}

func TestValidateCommand_MixedFiles(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	validPath := writeValidResume(t, tmpDir)
	missingPath := filepath.Join(tmpDir, "missing.yml")

	cmd := exec.Command(binaryPath, "validate", validPath, missingPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "valid (Jane Doe)")
	assert.Contains(t, string(output), "1 of 2 resume files failed validation")
}
