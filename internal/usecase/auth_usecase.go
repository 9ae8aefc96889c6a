package usecase

import (
	"context"
	"errors"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrSessionExpired    = errors.New("session expired")
	ErrInvalidLoginToken = errors.New("backend issued an unreadable token")
	ErrSetPasswordFailed = errors.New("password was not set")
)

// IAuthUseCase covers login, the activation/reset links and the local session.
type IAuthUseCase interface {
	Login(ctx context.Context, input entities.LoginPayload) (entities.LoginResult, entities.Session, error)
	ValidateToken(ctx context.Context, token string) (entities.PasswordTokenValidation, error)
	SetPassword(ctx context.Context, input entities.SetPasswordPayload) error

	Authenticate(token string) (entities.Session, error)
	Session(ctx context.Context) (entities.Session, error)
	Logout(ctx context.Context) error
	Teardown(ctx context.Context, s entities.Session)
}

type AuthUseCase struct {
	auth      interfaces.IAuthGateway
	inspector interfaces.ITokenInspector
	cache     interfaces.IQueryCache
	wizards   interfaces.IWizardSessionRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(auth interfaces.IAuthGateway, inspector interfaces.ITokenInspector, cache interfaces.IQueryCache, wizards interfaces.IWizardSessionRepository) *AuthUseCase {
	return &AuthUseCase{auth: auth, inspector: inspector, cache: cache, wizards: wizards}
}

func (u *AuthUseCase) Login(ctx context.Context, input entities.LoginPayload) (entities.LoginResult, entities.Session, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	res, err := u.auth.Login(ctx, input)
	if err != nil {
		log.Info().Str("email", input.Email).Err(err).Msg("[auth][usecase] login failed")
		return entities.LoginResult{}, entities.Session{}, err
	}

	session, err := u.inspector.Inspect(res.AccessToken)
	if err != nil {
		log.Error().Str("owner_id", res.Owner.ID).Err(err).Msg("[auth][usecase] login token unreadable")
		return entities.LoginResult{}, entities.Session{}, ErrInvalidLoginToken
	}
	log.Info().Str("owner_id", session.OwnerID).Time("expires_at", session.ExpiresAt).Msg("[auth][usecase] logged in")
	return res, session, nil
}

// ValidateToken checks an activation or reset link. An ok answer missing the
// owner, type or expiry counts as INVALID.
func (u *AuthUseCase) ValidateToken(ctx context.Context, token string) (entities.PasswordTokenValidation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.PasswordTokenValidation{Reason: entities.TokenFailureInvalid}, nil
	}

	v, err := u.auth.ValidateToken(ctx, token)
	if err != nil {
		return entities.PasswordTokenValidation{}, err
	}
	if !v.Valid() {
		reason := v.Reason
		if reason == "" {
			reason = entities.TokenFailureInvalid
		}
		return entities.PasswordTokenValidation{Reason: reason}, nil
	}
	return v, nil
}

func (u *AuthUseCase) SetPassword(ctx context.Context, input entities.SetPasswordPayload) error {
	input.Token = strings.TrimSpace(input.Token)

	res, err := u.auth.SetPassword(ctx, input)
	if err != nil {
		return err
	}
	if !res.Success {
		return ErrSetPasswordFailed
	}
	log.Info().Msg("[auth][usecase] password set")
	return nil
}

// Authenticate turns a bearer token into a session. Unreadable, expiry-less and
// expired tokens all yield ErrSessionExpired.
func (u *AuthUseCase) Authenticate(token string) (entities.Session, error) {
	s, err := u.inspector.Inspect(token)
	if err != nil {
		log.Debug().Err(err).Msg("[auth][usecase] token rejected")
		return entities.Session{}, ErrSessionExpired
	}
	return s, nil
}

func (u *AuthUseCase) Session(ctx context.Context) (entities.Session, error) {
	s, ok := entities.SessionFromContext(ctx)
	if !ok {
		return entities.Session{}, ErrSessionRequired
	}
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	session, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	u.Teardown(ctx, session)
	return nil
}

// Teardown forgets what the portal holds for s: the owner's cached reads and
// the wizards opened with s's token. Wizards of the owner's other logins stay.
func (u *AuthUseCase) Teardown(ctx context.Context, s entities.Session) {
	ownerID := s.OwnerID
	u.cache.Purge(ownerID)
	n, err := u.wizards.DeleteHeldBy(ctx, ownerID, s.TokenDigest())
	if err != nil {
		log.Warn().Str("owner_id", ownerID).Err(err).Msg("[auth][usecase] wizard teardown failed")
		return
	}
	log.Info().Str("owner_id", ownerID).Int("wizards_dropped", n).Msg("[auth][usecase] session torn down")
}
