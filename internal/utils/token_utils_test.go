package utils_test

import (
	"testing"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateFormToken("secret", time.Hour, "test")
	require.NoError(t, err)
	assert.True(t, utils.VerifyFormToken(token, "secret"))
}

func TestFormTokenRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateFormToken("secret", time.Hour, "test")
	require.NoError(t, err)
	assert.False(t, utils.VerifyFormToken(token, "other-secret"))
}

func TestFormTokenRejectsExpired(t *testing.T) {
	token, err := utils.GenerateFormToken("secret", -time.Minute, "test")
	require.NoError(t, err)
	assert.False(t, utils.VerifyFormToken(token, "secret"))
}

func TestFormTokenRejectsAdminToken(t *testing.T) {
	// An admin bearer token signed with the same secret must not pass as a
	// form token; the subject claim separates the two.
	token, err := utils.GenerateJWT("admin", "secret", time.Hour, "test")
	require.NoError(t, err)
	assert.False(t, utils.VerifyFormToken(token, "secret"))
}

func TestFormTokenRejectsGarbage(t *testing.T) {
	assert.False(t, utils.VerifyFormToken("not-a-jwt", "secret"))
	assert.False(t, utils.VerifyFormToken("", "secret"))
}
