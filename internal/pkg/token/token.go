package token

import (
	"errors"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure (malformed, expired,
// wrong signature, wrong scope). Callers never learn which one.
var ErrInvalidToken = errors.New("invalid token")

const clientTokenType = "client"

type (
	// SessionClaims is the payload of a user session token.
	SessionClaims struct {
		UserID uuid.UUID  `json:"id"`
		Role   model.Role `json:"role"`
		jwt.RegisteredClaims
	}

	// ClientClaims is the payload of a long-lived client-view token,
	// scoped to exactly one project.
	ClientClaims struct {
		ProjectID uuid.UUID `json:"project_id"`
		TokenType string    `json:"type"`
		jwt.RegisteredClaims
	}
)

type Manager struct {
	secret     []byte
	sessionTTL time.Duration
	clientTTL  time.Duration
}

func NewManager(secret string, sessionTTL, clientTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		clientTTL:  clientTTL,
	}
}

func (m *Manager) IssueSession(userID uuid.UUID, role model.Role) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) IssueClient(projectID uuid.UUID) (string, error) {
	claims := &ClientClaims{
		ProjectID: projectID,
		TokenType: clientTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.clientTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifySession validates signature and expiry and parses the role into the
// closed enum. Role strings are trimmed here once, so no defensive string
// comparison is needed downstream.
func (m *Manager) VerifySession(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := m.parse(raw, claims); err != nil {
		return nil, ErrInvalidToken
	}
	role, err := model.ParseRole(string(claims.Role))
	if err != nil || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	claims.Role = role
	return claims, nil
}

// VerifyClient validates signature and expiry and requires the client token
// type and a well-formed project id.
func (m *Manager) VerifyClient(raw string) (*ClientClaims, error) {
	claims := &ClientClaims{}
	if err := m.parse(raw, claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != clientTokenType || claims.ProjectID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) parse(raw string, claims jwt.Claims) error {
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if !tok.Valid {
		return ErrInvalidToken
	}
	return nil
}
