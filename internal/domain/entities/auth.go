package entities

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ExhibitorOwner struct {
	ID         string     `json:"id" validate:"required"`
	PersonType PersonType `json:"personType" validate:"oneof=PF PJ"`
	Document   string     `json:"document"`
	FullName   *string    `json:"fullName,omitempty"`
	Email      *string    `json:"email,omitempty"`
}

type LoginResult struct {
	AccessToken string         `json:"accessToken" validate:"required"`
	Owner       ExhibitorOwner `json:"owner"`
}

type PasswordTokenType string

const (
	PasswordTokenActivateAccount PasswordTokenType = "ACTIVATE_ACCOUNT"
	PasswordTokenResetPassword   PasswordTokenType = "RESET_PASSWORD"
)

type TokenFailureReason string

const (
	TokenFailureInvalid TokenFailureReason = "INVALID"
	TokenFailureExpired TokenFailureReason = "EXPIRED"
	TokenFailureUsed    TokenFailureReason = "USED"
)

// Message is the pt-BR explanation shown when an activation/reset link fails.
func (r TokenFailureReason) Message() string {
	switch r {
	case TokenFailureExpired:
		return "Este link expirou. Solicite um novo link"
	case TokenFailureUsed:
		return "Este link já foi utilizado. Solicite um novo link"
	default:
		return "Não foi possível validar o link. Verifique se o link está correto."
	}
}

type ValidateTokenPayload struct {
	Token string `json:"token" validate:"required"`
}

type PasswordTokenValidation struct {
	OK          bool               `json:"ok"`
	Reason      TokenFailureReason `json:"reason,omitempty"`
	TokenType   PasswordTokenType  `json:"tokenType,omitempty"`
	OwnerID     string             `json:"ownerId,omitempty"`
	ExpiresAt   string             `json:"expiresAt,omitempty"`
	Email       *string            `json:"email,omitempty"`
	DisplayName *string            `json:"displayName,omitempty"`
}

// Valid reports an ok answer that also carries everything needed to set a password.
func (v PasswordTokenValidation) Valid() bool {
	return v.OK && v.OwnerID != "" && v.TokenType != "" && v.ExpiresAt != ""
}

type SetPasswordPayload struct {
	Token    string `json:"token" validate:"required,min=10"`
	Password string `json:"password" validate:"required,min=8"`
}

type SetPasswordResult struct {
	Success bool `json:"success"`
}
