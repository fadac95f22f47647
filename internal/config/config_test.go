package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_DevelopmentAllowsDefaults(t *testing.T) {
	var cfg Config
	cfg.App.Env = "development"
	cfg.Auth.JWTSecret = defaultJWTSecret
	cfg.Auth.AdminPassword = defaultAdminPassword

	assert.NoError(t, cfg.Validate())
}

func TestValidate_ProductionRejectsDefaultSecret(t *testing.T) {
	var cfg Config
	cfg.App.Env = "production"
	cfg.Auth.JWTSecret = defaultJWTSecret
	cfg.Auth.AdminPassword = "strong-password"

	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRejectsDefaultPassword(t *testing.T) {
	var cfg Config
	cfg.App.Env = "production"
	cfg.Auth.JWTSecret = "real-secret"
	cfg.Auth.AdminPassword = defaultAdminPassword

	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionAcceptsHashOnly(t *testing.T) {
	var cfg Config
	cfg.App.Env = "production"
	cfg.Auth.JWTSecret = "real-secret"
	cfg.Auth.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"

	assert.NoError(t, cfg.Validate())
}
