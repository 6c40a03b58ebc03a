package authkit

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserCommand(t *testing.T) {
	const target = "https://auth.example/authorize?state=s"

	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", target}},
		{goos: "darwin", wantName: "open", wantArgs: []string{target}},
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{target}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{target}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := browserCommand(tt.goos, target)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestStartDetached_ReapsProcess(t *testing.T) {
	// the test binary itself, asked to run no tests, exits straight away
	cmd := exec.Command(os.Args[0], "-test.run=^$")

	done, err := startDetached(cmd)
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("process was not reaped")
	}
}

func TestStartDetached_StartFailure(t *testing.T) {
	done, err := startDetached(exec.Command("/nonexistent/browser-opener"))

	assert.Error(t, err)
	assert.Nil(t, done)
}
