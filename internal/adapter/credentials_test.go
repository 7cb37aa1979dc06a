package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTokenServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))

		hits.Add(1)
		time.Sleep(50 * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-1","token_type":"Bearer","expires_in":3600}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(tokenURL, refreshToken string) *OAuthCredentialProvider {
	return NewOAuthCredentialProvider(&oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL, AuthStyle: oauth2.AuthStyleInParams},
	}, refreshToken)
}

func TestCredentialProvider_TokenCachesAccessToken(t *testing.T) {
	var hits atomic.Int32
	srv := newTokenServer(t, &hits)
	p := newTestProvider(srv.URL, "refresh-1")

	first, err := p.Token(context.Background())
	require.NoError(t, err)
	second, err := p.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "access-1", first.AccessToken)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCredentialProvider_ConcurrentRefreshCollapses(t *testing.T) {
	var hits atomic.Int32
	srv := newTokenServer(t, &hits)
	p := newTestProvider(srv.URL, "refresh-1")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := p.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "access-1", token.AccessToken)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestCredentialProvider_NoRefreshToken(t *testing.T) {
	p := newTestProvider("http://127.0.0.1:0", "")

	_, err := p.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

func TestCredentialProvider_TokenSource(t *testing.T) {
	var hits atomic.Int32
	srv := newTokenServer(t, &hits)
	p := newTestProvider(srv.URL, "refresh-1")

	token, err := p.TokenSource(context.Background()).Token()
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
}

func TestCredentialProvider_CanceledLeaderDoesNotFailWaiters(t *testing.T) {
	var hits atomic.Int32
	srv := newTokenServer(t, &hits)
	p := newTestProvider(srv.URL, "refresh-1")

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderDone := make(chan error, 1)
	go func() {
		_, err := p.Refresh(leaderCtx)
		leaderDone <- err
	}()

	// let the leader reach the token endpoint before it is canceled
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	token, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.NoError(t, <-leaderDone)
}
