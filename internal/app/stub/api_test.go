package stub

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"jsonapi/internal/app/stub/data"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, method, target, body string) (int, []byte) {
	t.Helper()

	mux := New(data.Default(), newTestLogger())

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestStub_Routes(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{name: "all users", target: "/users", wantCount: 5},
		{name: "users by username", target: "/users?username=Karianne", wantCount: 1},
		{name: "unknown username", target: "/users?username=nobody", wantCount: 0},
		{name: "user posts", target: "/users/1/posts", wantCount: 4},
		{name: "post comments", target: "/posts/10/comments", wantCount: 2},
		{name: "user comments", target: "/users/1/comments", wantCount: 3},
		{name: "user todos", target: "/users/1/todos", wantCount: 4},
		{name: "no posts", target: "/users/5/posts", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serve(t, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, status, string(body))
			assert.Len(t, decodeList(t, body), tt.wantCount)
		})
	}
}

func TestStub_GetUser(t *testing.T) {
	status, body := serve(t, http.MethodGet, "/users/2", "")
	require.Equal(t, http.StatusOK, status)

	var u map[string]any
	require.NoError(t, json.Unmarshal(body, &u))
	assert.Equal(t, "Antonette", u["username"])

	status, _ = serve(t, http.MethodGet, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStub_Writes(t *testing.T) {
	status, body := serve(t, http.MethodPost, "/users", `{"name":"New User","username":"newuser"}`)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "newuser", created["username"])
	assert.EqualValues(t, 6, created["id"])

	status, body = serve(t, http.MethodPut, "/users/4", `{"name":"Updated User"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"Updated User"`)

	status, body = serve(t, http.MethodDelete, "/users/3", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, string(body))

	// Набор данных не изменился
	status, body = serve(t, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeList(t, body), 5)
}

func TestDataset_FromJSON(t *testing.T) {
	ds, err := data.FromJSON([]byte(`{"posts":[{"userId":1,"id":3},{"userId":1,"id":11},{"userId":2,"id":7}]}`))
	require.NoError(t, err)

	assert.Len(t, ds.PostsOf(1), 2)
	assert.NotNil(t, ds.TodosOf(1))
	assert.Empty(t, ds.TodosOf(1))

	_, err = data.FromJSON([]byte(`{"posts":`))
	assert.Error(t, err)
}
