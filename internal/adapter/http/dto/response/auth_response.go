package response

import (
	"portal_expositor/internal/domain/entities"
	"time"
)

type SessionResponse struct {
	OwnerID   string    `json:"ownerId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{OwnerID: s.OwnerID, ExpiresAt: s.ExpiresAt}
}

type LoginResponse struct {
	AccessToken string                  `json:"accessToken"`
	Owner       entities.ExhibitorOwner `json:"owner"`
	Session     SessionResponse         `json:"session"`
}

func FromLogin(res entities.LoginResult, s entities.Session) LoginResponse {
	return LoginResponse{AccessToken: res.AccessToken, Owner: res.Owner, Session: FromSession(s)}
}

// TokenValidationResponse adds the pt-BR explanation of a failed link.
type TokenValidationResponse struct {
	OK          bool                        `json:"ok"`
	Reason      entities.TokenFailureReason `json:"reason,omitempty"`
	Message     string                      `json:"message,omitempty"`
	TokenType   entities.PasswordTokenType  `json:"tokenType,omitempty"`
	ExpiresAt   string                      `json:"expiresAt,omitempty"`
	Email       *string                     `json:"email,omitempty"`
	DisplayName *string                     `json:"displayName,omitempty"`
}

func FromTokenValidation(v entities.PasswordTokenValidation) TokenValidationResponse {
	if !v.OK {
		return TokenValidationResponse{Reason: v.Reason, Message: v.Reason.Message()}
	}
	return TokenValidationResponse{
		OK:          true,
		TokenType:   v.TokenType,
		ExpiresAt:   v.ExpiresAt,
		Email:       v.Email,
		DisplayName: v.DisplayName,
	}
}

type OKResponse struct {
	OK bool `json:"ok"`
}
