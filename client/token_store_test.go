package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

func TestTokenStoreEmptyIsInvalid(t *testing.T) {
	store := client.NewTokenStore()

	assert.False(t, store.Valid())
	_, ok := store.UserID()
	assert.False(t, ok)
}

func TestTokenStoreValidToken(t *testing.T) {
	token, err := utils.GenerateToken(42, "admin")
	assert.NoError(t, err)

	store := client.NewTokenStore()
	store.SetToken(token)

	assert.True(t, store.Valid())

	id, ok := store.UserID()
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = store.ExpiresAt()
	assert.True(t, ok)
}

func TestTokenStoreGarbageTokenIsInvalid(t *testing.T) {
	store := client.NewTokenStore()
	store.SetToken("not-a-jwt")

	assert.False(t, store.Valid())
}

func TestTokenStoreClear(t *testing.T) {
	store := client.NewTokenStore()
	store.SetToken("a")
	store.SetRefreshToken("b")

	store.Clear()

	assert.Empty(t, store.Token())
	assert.Empty(t, store.RefreshToken())
}
