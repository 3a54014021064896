package exec

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func buildOutput(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	bin := filepath.Join(t.TempDir(), "output")
	_, err = NewExecer(wd).RunX(context.Background(), "go", "build", "-o", bin, "./testdata/output")
	require.NoError(t, err)

	return bin
}

func TestRun(t *testing.T) {
	bin := buildOutput(t)
	ctx := context.Background()
	e := NewExecer(t.TempDir())

	t.Run("captures streams verbatim", func(t *testing.T) {
		res, err := e.Run(ctx, bin)
		require.NoError(t, err)
		require.Equal(t, 0, res.ExitCode())
		require.Equal(t, "stdout", res.Stdout())
		require.Equal(t, "stderr", res.Stderr())
		require.False(t, res.Cancelled())
	})

	t.Run("non zero exit code is not an error", func(t *testing.T) {
		res, err := e.Run(ctx, bin, "1")
		require.NoError(t, err)
		require.Equal(t, 1, res.ExitCode())
		require.Equal(t, "stdout", res.Stdout())
	})

	t.Run("RunX fails on non zero exit code", func(t *testing.T) {
		stdout, err := e.RunX(ctx, bin, "2")
		require.Error(t, err)
		require.Equal(t, "stdout", stdout)

		code, ok := GetExitCode(err)
		require.True(t, ok)
		require.Equal(t, 2, code)

		stderr, ok := GetStderr(err)
		require.True(t, ok)
		require.Equal(t, "stderr", stderr)
	})

	t.Run("missing command", func(t *testing.T) {
		_, err := e.Run(ctx, filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)

		_, ok := GetExitCode(err)
		require.False(t, ok)
	})
}

func TestRunWithStdin(t *testing.T) {
	e := NewExecer(t.TempDir())
	out, err := e.RunWithStdinX(context.Background(), strings.NewReader("Hello world!"), "cat")
	require.NoError(t, err)
	require.Equal(t, "Hello world!", out)
}

func TestWithEnv(t *testing.T) {
	e := NewExecer(t.TempDir())
	withEnv := e.WithEnv("MDB_TEST_VALUE=subject")

	out, err := withEnv.RunX(context.Background(), "sh", "-c", "printf %s \"$MDB_TEST_VALUE\"")
	require.NoError(t, err)
	require.Equal(t, "subject", out)

	out, err = e.RunX(context.Background(), "sh", "-c", "printf %s \"$MDB_TEST_VALUE\"")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFS(t *testing.T) {
	dir := t.TempDir()
	e := NewExecer(dir)
	_, err := e.RunX(context.Background(), "touch", "a.txt")
	require.NoError(t, err)

	fs := e.FS()

	t.Run("exists", func(t *testing.T) {
		exists, err := afero.Exists(fs, "a.txt")
		require.True(t, exists)
		require.NoError(t, err)
	})

	t.Run("do not exist", func(t *testing.T) {
		exists, err := afero.Exists(fs, "b.txt")
		require.False(t, exists)
		require.NoError(t, err)
	})
}

func TestSub(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subjects"), 0o755))

	e := NewExecer(dir)

	sub, err := e.Sub("subjects")
	require.NoError(t, err)

	_, err = sub.RunX(context.Background(), "touch", "b.txt")
	require.NoError(t, err)

	exists, err := afero.Exists(e.FS(), "subjects/b.txt")
	require.NoError(t, err)
	require.True(t, exists)

	_, err = e.Sub("missing")
	require.Error(t, err)
}
