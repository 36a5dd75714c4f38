package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCollection(t *testing.T, data string) Collection {
	t.Helper()
	c, err := ParseCollection([]byte(data))
	require.NoError(t, err)
	return c
}

func TestLastByID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFound bool
		wantID    int64
		wantTitle string
		wantErr   error
	}{
		{
			name:      "max id wins",
			input:     `[{"id":3},{"id":11},{"id":7}]`,
			wantFound: true,
			wantID:    11,
		},
		{
			name:      "tie takes last seen",
			input:     `[{"id":4,"title":"first"},{"id":4,"title":"second"}]`,
			wantFound: true,
			wantID:    4,
			wantTitle: "second",
		},
		{
			name:  "empty collection",
			input: `[]`,
		},
		{
			name:    "id missing",
			input:   `[{"id":1},{"title":"no id"}]`,
			wantErr: ErrFieldMissing,
		},
		{
			name:    "id is a string",
			input:   `[{"id":"1"}]`,
			wantErr: ErrFieldType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last, found, err := LastByID(mustCollection(t, tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if !found {
				return
			}

			id, err := last.ID()
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)

			if tt.wantTitle != "" {
				title, err := last.Str("title")
				require.NoError(t, err)
				assert.Equal(t, tt.wantTitle, title)
			}
		})
	}
}

func TestOpenTitles(t *testing.T) {
	todos := mustCollection(t, `[
		{"id":1,"title":"delectus aut autem","completed":false},
		{"id":2,"title":"quis ut nam facilis","completed":true},
		{"id":3,"title":"fugiat veniam minus","completed":false}
	]`)

	titles, err := OpenTitles(todos)
	require.NoError(t, err)
	assert.Equal(t, []string{"delectus aut autem", "fugiat veniam minus"}, titles)

	titles, err = OpenTitles(Collection{})
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestOpenTitles_BadCompleted(t *testing.T) {
	_, err := OpenTitles(mustCollection(t, `[{"title":"x"}]`))
	assert.ErrorIs(t, err, ErrFieldMissing)

	_, err = OpenTitles(mustCollection(t, `[{"title":"x","completed":"no"}]`))
	assert.ErrorIs(t, err, ErrFieldType)
}

func TestFields(t *testing.T) {
	f := NewFields()
	require.NoError(t, f.Set("name", "New User"))
	require.NoError(t, f.Set("username", "newuser"))
	require.NoError(t, f.Set("email", "newuser@example.com"))
	require.NoError(t, f.Set("site.url", "example.com"))

	assert.Equal(t,
		`{"name":"New User","username":"newuser","email":"newuser@example.com","site.url":"example.com"}`,
		string(f.Bytes()),
	)

	assert.Error(t, f.Set("", "x"))
}

func TestFieldsFromPairs(t *testing.T) {
	f, err := FieldsFromPairs([]string{"name=Updated User", "email=updated@example.com"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Updated User","email":"updated@example.com"}`, string(f.Bytes()))

	_, err = FieldsFromPairs([]string{"broken"})
	assert.Error(t, err)
}
