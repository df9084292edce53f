package token_test

import (
	"testing"
	"time"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/auth/token"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := token.NewManager("secret")

	access, refresh, err := m.IssuePair("user-1", "emp-1", "MANAGER")
	assert.NoError(t, err)

	claims, err := m.Parse(access, token.TypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, "MANAGER", claims.Role)

	t.Run("negative refresh token used as access", func(t *testing.T) {
		_, err := m.Parse(refresh, token.TypeAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("negative wrong secret", func(t *testing.T) {
		_, err := token.NewManager("other").Parse(access, token.TypeAccess)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestManager_Expired(t *testing.T) {
	issued := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	m := token.NewManager("secret").WithClock(func() time.Time { return issued })

	access, err := m.Issue("user-1", "emp-1", "EMPLOYEE", token.TypeAccess, token.AccessTTL)
	assert.NoError(t, err)

	later := m.WithClock(func() time.Time { return issued.Add(time.Hour) })
	_, err = later.Parse(access, token.TypeAccess)

	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}
