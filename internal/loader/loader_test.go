package loader

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestSet_Extensions(t *testing.T) {
	s := Default()
	assert.Equal(t, []string{".hcl", ".yaml", ".yml"}, s.Extensions())
	assert.True(t, s.Supports("x/checks.YML"))
	assert.False(t, s.Supports("notes.txt"))
}

func TestLoadFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.yaml":    "s1: {func_left: x}\n",
		"b.hcl":     `step "s1" { func_left = "x" }`,
		"notes.txt": "hello",
	})
	ctx := testContext(&bytes.Buffer{})

	p, err := Default().LoadFile(ctx, filepath.Join(dir, "a.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "s1", p.Steps[0].Name)

	p, err = Default().LoadFile(ctx, filepath.Join(dir, "b.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "x", p.Steps[0].Attributes["func_left"])

	_, err = Default().LoadFile(ctx, filepath.Join(dir, "notes.txt"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Default().LoadFile(ctx, dir)
	require.ErrorContains(t, err, "not a regular file")

	_, err = Default().LoadFile(ctx, filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1_first.yaml":    "s1: {func_left: x}\n",
		"2_broken.yml":    "s1: [",
		"3_second.hcl":    `step "s2" { func_left = "y" }`,
		"README.md":       "# docs",
		"nested/4th.yaml": "s3: {func_left: z}\n",
	})
	logs := &bytes.Buffer{}
	ctx := testContext(logs)

	pipelines, err := Default().LoadDir(ctx, dir, false)
	require.NoError(t, err)
	require.Len(t, pipelines, 2)
	assert.Equal(t, filepath.Join(dir, "1_first.yaml"), pipelines[0].Source)
	assert.Equal(t, filepath.Join(dir, "3_second.hcl"), pipelines[1].Source)
	assert.Contains(t, logs.String(), "Unsupported file rejected")
	assert.Contains(t, logs.String(), "README.md")
	assert.Contains(t, logs.String(), "Error reading file, excluding it from the run.")

	pipelines, err = Default().LoadDir(ctx, dir, true)
	require.NoError(t, err)
	assert.Len(t, pipelines, 3)
}

func TestLoadDir_Errors(t *testing.T) {
	ctx := testContext(&bytes.Buffer{})
	dir := writeFiles(t, map[string]string{"a.yaml": ""})

	_, err := Default().LoadDir(ctx, filepath.Join(dir, "absent"), false)
	require.Error(t, err)

	_, err = Default().LoadDir(ctx, filepath.Join(dir, "a.yaml"), false)
	require.ErrorContains(t, err, "not a directory")
}
