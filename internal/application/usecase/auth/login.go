package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/auth"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidCredentials = errors.New("username or password is incorrect")

// CredentialValidator is a pure predicate over the configured admin
// credentials. The hashed path takes precedence when a hash is configured.
type CredentialValidator struct {
	username     string
	password     string
	passwordHash string
}

func NewCredentialValidator(cfg config.Config) *CredentialValidator {
	return &CredentialValidator{
		username:     cfg.Auth.AdminUsername,
		password:     cfg.Auth.AdminPassword,
		passwordHash: cfg.Auth.AdminPasswordHash,
	}
}

func (v *CredentialValidator) Validate(username, password string) bool {
	if !auth.SecureCompare(username, v.username) {
		return false
	}
	if v.passwordHash != "" {
		return auth.CheckPasswordHash(password, v.passwordHash)
	}
	return auth.SecureCompare(password, v.password)
}

type LoginUseCase struct {
	validator *CredentialValidator
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewLoginUseCase(validator *CredentialValidator, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		validator: validator,
		jwtSvc:    jwtSvc,
		logger:    log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string
	MaxAge      time.Duration
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if !uc.validator.Validate(input.Username, input.Password) {
		err := apperror.NewUnauthorized("invalid credentials", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(input.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token", err)
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("username", input.Username))
	return &LoginOutput{AccessToken: token, MaxAge: uc.jwtSvc.TokenLifespan()}, nil
}

type LogoutUseCase struct {
	jwtSvc  *auth.JWTService
	revoker service.SessionRevoker
	logger  logger.Logger
}

func NewLogoutUseCase(jwtSvc *auth.JWTService, revoker service.SessionRevoker, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{
		jwtSvc:  jwtSvc,
		revoker: revoker,
		logger:  log,
	}
}

// Execute revokes the presented token until its natural expiry. A missing
// or already-invalid token is not an error: logout still clears the cookie.
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := uc.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := uc.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		uc.logger.Error("Failed to revoke session", err)
		return apperror.NewInternal("failed to revoke session", err)
	}
	return nil
}
