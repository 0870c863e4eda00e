package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Doe\nSoftware Engineer"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, "John Doe", doc.Paragraphs[0].Text())
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	_, err := Load(path)
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".pdf", formatErr.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestSave_CreatesParentDirectories(t *testing.T) {
	doc := FromText("tailored content")
	path := filepath.Join(t.TempDir(), "acme_job", "Resume_Acme_acme_job.txt")

	require.NoError(t, Save(doc, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tailored content", string(content))
}

func TestSave_ThenLoad_RoundTrips(t *testing.T) {
	doc := FromText("line one\nline two")
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, Save(doc, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.PlainText(), loaded.PlainText())
}
