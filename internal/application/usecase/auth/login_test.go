package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/pkg/apperror"
	"github.com/Chetan55567/portfolio-api/pkg/auth"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
)

type fakeRevoker struct {
	revokedTTLs map[string]time.Duration
	revokeErr   error
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revokedTTLs: map[string]time.Duration{}}
}

func (r *fakeRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if r.revokeErr != nil {
		return r.revokeErr
	}
	r.revokedTTLs[tokenID] = ttl
	return nil
}

func (r *fakeRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := r.revokedTTLs[tokenID]
	return ok, nil
}

func testValidator(password, passwordHash string) *CredentialValidator {
	var cfg config.Config
	cfg.Auth.AdminUsername = "admin"
	cfg.Auth.AdminPassword = password
	cfg.Auth.AdminPasswordHash = passwordHash
	return NewCredentialValidator(cfg)
}

func TestCredentialValidator_Plaintext(t *testing.T) {
	v := testValidator("s3cret", "")

	assert.True(t, v.Validate("admin", "s3cret"))
	assert.False(t, v.Validate("admin", "wrong"))
	assert.False(t, v.Validate("root", "s3cret"))
}

func TestCredentialValidator_HashTakesPrecedence(t *testing.T) {
	hash, err := auth.HashPassword("hashed-secret")
	require.NoError(t, err)
	v := testValidator("plaintext-secret", hash)

	assert.True(t, v.Validate("admin", "hashed-secret"))
	assert.False(t, v.Validate("admin", "plaintext-secret"), "the plaintext credential is ignored once a hash is configured")
}

func TestLoginUseCase_Execute(t *testing.T) {
	jwtSvc := auth.NewJWTService("login-test-secret", time.Hour)
	uc := NewLoginUseCase(testValidator("s3cret", ""), jwtSvc, logger.NewZapLogger("development"))

	out, err := uc.Execute(context.Background(), LoginInput{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, time.Hour, out.MaxAge)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = uc.Execute(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogoutUseCase_RevokesWithRemainingTTL(t *testing.T) {
	jwtSvc := auth.NewJWTService("login-test-secret", time.Hour)
	revoker := newFakeRevoker()
	uc := NewLogoutUseCase(jwtSvc, revoker, logger.NewZapLogger("development"))

	token, err := jwtSvc.GenerateToken("admin")
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, uc.Execute(context.Background(), token))

	ttl, ok := revoker.revokedTTLs[claims.ID]
	require.True(t, ok, "the token's jti must be recorded")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestLogoutUseCase_InvalidTokenIsNoop(t *testing.T) {
	jwtSvc := auth.NewJWTService("login-test-secret", time.Hour)
	revoker := newFakeRevoker()
	uc := NewLogoutUseCase(jwtSvc, revoker, logger.NewZapLogger("development"))

	assert.NoError(t, uc.Execute(context.Background(), ""))
	assert.NoError(t, uc.Execute(context.Background(), "not-a-token"))
	assert.Empty(t, revoker.revokedTTLs)
}

func TestLogoutUseCase_RevokerErrorPropagates(t *testing.T) {
	jwtSvc := auth.NewJWTService("login-test-secret", time.Hour)
	revoker := newFakeRevoker()
	revoker.revokeErr = errors.New("redis: connection refused")
	uc := NewLogoutUseCase(jwtSvc, revoker, logger.NewZapLogger("development"))

	token, err := jwtSvc.GenerateToken("admin")
	require.NoError(t, err)

	err = uc.Execute(context.Background(), token)
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
