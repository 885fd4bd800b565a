package auth_test

import (
	"testing"

	"go-internmatch-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse-battery")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.True(t, auth.CheckPassword(hash, "correct-horse-battery"))
	assert.False(t, auth.CheckPassword(hash, "wrong-password"))
	assert.False(t, auth.CheckPassword("", "anything"))
}

func TestPasswordHashUnique(t *testing.T) {
	first, err := auth.HashPassword("same-input")
	assert.NoError(t, err)
	second, err := auth.HashPassword("same-input")
	assert.NoError(t, err)

	// bcrypt salts per call
	assert.NotEqual(t, first, second)
}
