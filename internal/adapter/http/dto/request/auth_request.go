package request

import "portal_expositor/internal/domain/entities"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) ToEntity() entities.LoginPayload {
	return entities.LoginPayload{Email: r.Email, Password: r.Password}
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type SetPasswordRequest struct {
	Token           string `json:"token" binding:"required,min=10"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"omitempty,eqfield=Password"`
}

func (r SetPasswordRequest) ToEntity() entities.SetPasswordPayload {
	return entities.SetPasswordPayload{Token: r.Token, Password: r.Password}
}
