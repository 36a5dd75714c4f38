package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"jsonapi/internal/app/stub"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(stub.New(nil, slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(srv.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "prod")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--base-url", srv.URL))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUserFind(t *testing.T) {
	out, err := execute(t, "user", "find", "Karianne", "--format", "simple")
	require.NoError(t, err)
	assert.Contains(t, out, `"username":"Karianne"`)
}

func TestUserCreate(t *testing.T) {
	out, err := execute(t, "user", "create", "--name", "New User", "--username", "newuser", "--field", "phone=1-770")
	require.NoError(t, err)
	assert.Contains(t, out, `"phone":"1-770"`)
	assert.Contains(t, out, `"id":6`)
}

func TestTodoOpen(t *testing.T) {
	out, err := execute(t, "todo", "open", "1")
	require.NoError(t, err)
	assert.Equal(t, "- delectus aut autem\n- quis ut nam facilis et officia qui\n- fugiat veniam minus\n", out)
}

func TestPostExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)

	out, err := execute(t, "post", "export", "1")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "user-1-post-10-comments.json"))
	assert.FileExists(t, filepath.Join(dir, "user-1-post-10-comments.json"))
}

func TestInvalidID(t *testing.T) {
	_, err := execute(t, "user", "get", "abc")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Setenv("EXPORT_DIR", t.TempDir())

	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Created User:")
	assert.Contains(t, out, "All open task:")
}
