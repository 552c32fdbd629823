//go:build unit

package user_test

import (
	"testing"

	"rentigo/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("customer@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed_password", user.RoleCustomer)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "customer@example.com", u.Email().Value())
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.True(t, u.IsActive())
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"valid", "a@example.com", "a@example.com", nil},
		{"trims whitespace", "  a@example.com  ", "a@example.com", nil},
		{"plus tag", "a+tag@example.com", "a+tag@example.com", nil},
		{"empty", "", "", user.ErrInvalidEmail},
		{"no at sign", "example.com", "", user.ErrInvalidEmail},
		{"no tld", "a@example", "", user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("long-enough-password")
	require.NoError(t, err)
	assert.Equal(t, "long-enough-password", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
