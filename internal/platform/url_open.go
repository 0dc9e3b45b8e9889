package platform

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

var ErrNoURL = errors.New("no url to open")

// OpenURL hands url to the desktop's default handler without waiting for it.
func OpenURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrNoURL
	}
	return buildOpenCommand(runtime.GOOS, url).Start()
}

func buildOpenCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
