package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(func() time.Time { return fixedNow })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRenderWritesDeck(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.json", `{"projectName":"Harbor View","bedCount":"72"}`)
	brand := writeFile(t, dir, "brand.json", `{"companyName":"Acme","primaryColor":"#112233"}`)
	out := filepath.Join(dir, "deck.pptx")

	stdout, err := run(t, "render", "--data", data, "--brand", brand, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("PK")))
}

func TestRenderDefaultFileName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	data := writeFile(t, dir, "data.json", `{"projectName":"Sunrise Gardens"}`)

	_, err := run(t, "render", "-d", data)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Sunrise-Gardens-2025-03-14.pptx"))
}

func TestRenderMissingData(t *testing.T) {
	_, err := run(t, "render", "--data", filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "read project data")
}

func TestPrompt(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.json", `{"projectName":"Harbor View"}`)

	stdout, err := run(t, "prompt", "--data", data, "--company", "Acme")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Harbor View")
	assert.Contains(t, stdout, "NOI growth")
}

func TestCatalog(t *testing.T) {
	stdout, err := run(t, "catalog")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 11)

	withRegions, err := run(t, "catalog", "--regions")
	require.NoError(t, err)
	assert.Greater(t, len(strings.Split(withRegions, "\n")), len(lines))
}
