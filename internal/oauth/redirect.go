// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package oauth

import (
	"os/exec"
	"runtime"
)

// Redirector performs the actual navigation to a provider URL.
type Redirector interface {
	Redirect(url string) error
}

// Browser opens the URL in the user's default browser.
//
// It uses platform-specific commands to launch the default browser:
//   - Windows: rundll32 url.dll,FileProtocolHandler
//   - macOS: open command
//   - Linux: xdg-open command
type Browser struct{}

var _ Redirector = Browser{}

// Redirect starts the browser process without waiting for it to complete.
func (Browser) Redirect(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
