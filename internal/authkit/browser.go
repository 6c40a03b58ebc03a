package authkit

import (
	"os/exec"
	"runtime"
)

// openBrowser opens url with the platform's default handler.
func openBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	_, err := startDetached(exec.Command(name, args...))
	return err
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default: // linux, freebsd, openbsd, netbsd
		return "xdg-open", []string{url}
	}
}

// startDetached starts cmd and reaps it in the background. The returned
// channel yields the exit result once the process is gone.
func startDetached(cmd *exec.Cmd) (<-chan error, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
