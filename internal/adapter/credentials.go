package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// googleEndpoint is Google's OAuth 2.0 endpoint.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:   "https://accounts.google.com/o/oauth2/auth",
	TokenURL:  "https://oauth2.googleapis.com/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

const driveScope = "https://www.googleapis.com/auth/drive.file"

// refreshTimeout bounds one token exchange. The exchange is shared by every
// caller waiting on it, so it does not follow any single caller's ctx.
const refreshTimeout = 30 * time.Second

// OAuthCredentialProvider exchanges a long-lived refresh token for access
// tokens. The current token is cached under mu; refreshes are collapsed by
// group so that a burst of expired callers hits the token endpoint once.
type OAuthCredentialProvider struct {
	oauth *oauth2.Config

	mu           sync.RWMutex
	token        *oauth2.Token
	refreshToken string

	group singleflight.Group
}

// NewDriveCredentialProvider builds a provider for the Drive client.
func NewDriveCredentialProvider(cfg config.Drive) *OAuthCredentialProvider {
	return NewOAuthCredentialProvider(&oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     googleEndpoint,
		Scopes:       []string{driveScope},
	}, cfg.RefreshToken)
}

func NewOAuthCredentialProvider(oauth *oauth2.Config, refreshToken string) *OAuthCredentialProvider {
	return &OAuthCredentialProvider{oauth: oauth, refreshToken: refreshToken}
}

// Token implements [CredentialProvider].
func (p *OAuthCredentialProvider) Token(ctx context.Context) (*oauth2.Token, error) {
	p.mu.RLock()
	token := p.token
	p.mu.RUnlock()

	if token.Valid() {
		return token, nil
	}

	return p.Refresh(ctx)
}

// Refresh implements [CredentialProvider].
func (p *OAuthCredentialProvider) Refresh(ctx context.Context) (*oauth2.Token, error) {
	v, err, _ := p.group.Do("refresh", func() (any, error) {
		p.mu.RLock()
		refreshToken := p.refreshToken
		p.mu.RUnlock()

		if refreshToken == "" {
			return nil, ErrNoRefreshToken
		}

		exchangeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		token, err := p.oauth.TokenSource(exchangeCtx, &oauth2.Token{RefreshToken: refreshToken}).Token()
		if err != nil {
			return nil, fmt.Errorf("refresh oauth token: %w", err)
		}

		p.mu.Lock()
		p.token = token
		if token.RefreshToken != "" {
			p.refreshToken = token.RefreshToken
		}
		p.mu.Unlock()

		return token, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*oauth2.Token), nil
}

// TokenSource adapts the provider to [oauth2.TokenSource] bound to ctx.
func (p *OAuthCredentialProvider) TokenSource(ctx context.Context) oauth2.TokenSource {
	return providerTokenSource{ctx: ctx, provider: p}
}

type providerTokenSource struct {
	ctx      context.Context
	provider CredentialProvider
}

func (s providerTokenSource) Token() (*oauth2.Token, error) {
	return s.provider.Token(s.ctx)
}
