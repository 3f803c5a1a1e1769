package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Sanitized(t *testing.T) {
	u := User{
		UserID:    7,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Password:  "bcrypt-hash",
		UserType:  "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s := u.Sanitized()
	assert.Equal(t, u.UserID, s.UserID)
	assert.Equal(t, u.Email, s.Email)
	assert.Empty(t, s.Password)
	assert.True(t, s.CreatedAt.IsZero())
	assert.True(t, s.UpdatedAt.IsZero())
}

func TestUser_JSONNeverCarriesPassword(t *testing.T) {
	u := User{UserID: 7, Email: "ann@x.com", Password: "bcrypt-hash"}

	body, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "bcrypt-hash")
	assert.NotContains(t, string(body), "password")
}
