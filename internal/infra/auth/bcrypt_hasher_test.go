package auth

import (
	"testing"

	"taskapi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// The stored credential must never equal the plaintext.
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, hasher.Check("secret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret-password", first))
	assert.True(t, hasher.Check("secret-password", second))
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, impl.cost)

	hasher = NewBcryptHasher(newTestHasherConfig(100))
	impl, ok = hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, impl.cost)
}
