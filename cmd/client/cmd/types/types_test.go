package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("4")
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestAppFrom_Missing(t *testing.T) {
	_, err := AppFrom(context.Background())
	assert.Error(t, err)
}
