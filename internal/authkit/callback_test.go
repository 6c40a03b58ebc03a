package authkit

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestCallbackServer(t *testing.T, state string) *callbackServer {
	t.Helper()
	srv, err := newCallbackServer("127.0.0.1:0", state, logger.Nop())
	require.NoError(t, err)
	go srv.serve()
	t.Cleanup(srv.shutdown)
	return srv
}

func TestCallbackServer_DeliversCode(t *testing.T) {
	srv := startTestCallbackServer(t, "st")

	resp, err := http.Get(srv.redirectURL() + "?state=st&code=abc")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Login complete")

	code, err := srv.wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", code)
}

func TestCallbackServer_OnlyFirstRedirectCounts(t *testing.T) {
	srv := startTestCallbackServer(t, "st")

	for _, q := range []string{"?state=st&code=first", "?state=st&code=second"} {
		resp, err := http.Get(srv.redirectURL() + q)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	code, err := srv.wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", code)
}

func TestCallbackServer_ForeignStateDoesNotEndWait(t *testing.T) {
	srv := startTestCallbackServer(t, "good-state")

	for _, q := range []string{"?state=stale&code=x", "?state=stale&error=access_denied", "?code=y"} {
		resp, err := http.Get(srv.redirectURL() + q)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		assert.Contains(t, string(body), ErrStateMismatch.Error(), q)
	}

	resp, err := http.Get(srv.redirectURL() + "?state=good-state&code=real")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	code, err := srv.wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "real", code)
}

func TestCallbackServer_ForeignStateOnlyTimesOut(t *testing.T) {
	srv := startTestCallbackServer(t, "good-state")

	resp, err := http.Get(srv.redirectURL() + "?state=stale&code=x")
	require.NoError(t, err)
	_ = resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = srv.wait(ctx)
	assert.ErrorIs(t, err, ErrLoginTimeout)
}

func TestCallbackServer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{name: "provider error", query: "?state=st&error=access_denied", wantErr: ErrLoginCancelled},
		{name: "no code", query: "?state=st", wantErr: ErrMissingAuthCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := startTestCallbackServer(t, "st")

			resp, err := http.Get(srv.redirectURL() + tt.query)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			_, err = srv.wait(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCallbackServer_EscapesErrorText(t *testing.T) {
	srv := startTestCallbackServer(t, "st")

	resp, err := http.Get(srv.redirectURL() + "?state=st&error=%3Cscript%3E")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.NotContains(t, string(body), "<script>")
	assert.Contains(t, string(body), "&lt;script&gt;")
}

func TestCallbackServer_WaitTimeout(t *testing.T) {
	srv := startTestCallbackServer(t, "st")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := srv.wait(ctx)
	assert.ErrorIs(t, err, ErrLoginTimeout)
}

func TestCallbackServer_AddressInUse(t *testing.T) {
	srv := startTestCallbackServer(t, "st")

	_, err := newCallbackServer(srv.listener.Addr().String(), "st", logger.Nop())
	assert.Error(t, err)
}
