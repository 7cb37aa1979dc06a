package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/models"
)

// tokenAuthority is the HS256 JWT implementation of [TokenAuthority].
type tokenAuthority struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenAuthority constructs a [TokenAuthority] from the token settings
// of cfg. The returned value is safe for concurrent use.
func NewTokenAuthority(cfg config.App, logger *logger.Logger) TokenAuthority {
	return &tokenAuthority{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue signs a token whose subject is userID.
func (a *tokenAuthority) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate verifies signature, issuer and expiry. Expired, malformed and
// foreign tokens are indistinguishable to the caller.
func (a *tokenAuthority) Validate(ctx context.Context, tokenString string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return "", ErrInvalidToken
	}

	userID, err := token.GetUserID()
	if err != nil {
		return "", ErrInvalidToken
	}

	return userID, nil
}
