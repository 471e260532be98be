package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_TokenLifecycle(t *testing.T) {
	session := NewSession()
	assert.Equal(t, "", session.Token())
	assert.False(t, session.Authenticated())

	session.SetToken("T1")
	assert.Equal(t, "T1", session.Token())
	assert.True(t, session.Authenticated())

	session.Clear()
	assert.Equal(t, "", session.Token())
	assert.False(t, session.Authenticated())
}

func TestSession_AuthenticatedWithExpiredJWT(t *testing.T) {
	session := NewSession()
	session.SetToken(signedToken(t, time.Now().Add(-time.Minute)))
	assert.NotEmpty(t, session.Token())
	assert.False(t, session.Authenticated())

	session.SetToken(signedToken(t, time.Now().Add(time.Hour)))
	assert.True(t, session.Authenticated())
}

func TestSession_RefreshWithoutFunc(t *testing.T) {
	session := NewSession()
	_, err := session.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNoRefresh)
}

func TestSession_RefreshSingleFlight(t *testing.T) {
	var calls int32
	session := NewSession()
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return "T2", nil
	})

	const workers = 10
	tokens := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := session.Refresh(context.Background())
			require.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, token := range tokens {
		assert.Equal(t, "T2", token)
	}
	assert.Equal(t, "T2", session.Token())
}

func TestSession_RefreshFailureStoresNothing(t *testing.T) {
	var calls int32
	session := NewSession()
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", errors.New("refresh rejected")
	})

	_, err := session.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "", session.Token())

	// pending reference is cleared, a later 401 can try again
	_, err = session.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSession_RefreshEmptyTokenIsFailure(t *testing.T) {
	session := NewSession()
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		return "", nil
	})
	_, err := session.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "", session.Token())
}

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": expiry.Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}
