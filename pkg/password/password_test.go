package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-careerhub-backend/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, password.Compare("s3cret-pass", hashed))
	assert.False(t, password.Compare("wrong-pass", hashed))
	assert.False(t, password.Compare("", hashed))
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-input")
	require.NoError(t, err)
	second, err := password.Hash("same-input")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so equal inputs produce distinct hashes
	assert.NotEqual(t, first, second)
	assert.True(t, password.Compare("same-input", first))
	assert.True(t, password.Compare("same-input", second))
}
