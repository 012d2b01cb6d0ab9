package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword(t *testing.T) {
	t.Run("should read a line from piped input", func(t *testing.T) {
		password, err := readPassword(strings.NewReader("secret\n"))

		require.NoError(t, err)
		assert.Equal(t, "secret", password)
	})

	t.Run("should fail on empty input", func(t *testing.T) {
		_, err := readPassword(strings.NewReader(""))

		assert.Error(t, err)
	})
}

func TestSavedSession(t *testing.T) {
	t.Run("should resume from complete environment credentials", func(t *testing.T) {
		t.Setenv("ST_USER_ID", "42")
		t.Setenv("ST_ACCESS_TOKEN", "tok")

		userID, token, ok := savedSession()

		require.True(t, ok)
		assert.Equal(t, int64(42), userID)
		assert.Equal(t, "tok", token)
	})

	t.Run("should not resume when the token is missing", func(t *testing.T) {
		t.Setenv("ST_USER_ID", "42")
		t.Setenv("ST_ACCESS_TOKEN", "")

		_, _, ok := savedSession()

		assert.False(t, ok)
	})

	t.Run("should not resume from a malformed user id", func(t *testing.T) {
		t.Setenv("ST_USER_ID", "forty-two")
		t.Setenv("ST_ACCESS_TOKEN", "tok")

		_, _, ok := savedSession()

		assert.False(t, ok)
	})
}
