package token

import (
	"errors"
	"time"

	autherrors "go-leave/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

type Claims struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	Type       string `json:"typ"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret []byte
	now    func() time.Time
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), now: time.Now}
}

// WithClock returns a copy that reads time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) Issue(userID, employeeID, role, tokenType string, ttl time.Duration) (string, error) {
	issuedAt := m.now()
	claims := Claims{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
		Type:       tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func (m *Manager) IssuePair(userID, employeeID, role string) (access, refresh string, err error) {
	access, err = m.Issue(userID, employeeID, role, TypeAccess, AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.Issue(userID, employeeID, role, TypeRefresh, RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Parse verifies the signature, expiry and token type.
func (m *Manager) Parse(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !parsed.Valid || claims.Type != tokenType {
		return nil, autherrors.ErrInvalidToken
	}
	if claims.UserID == "" || claims.EmployeeID == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
