// Package links opens URLs in the user's browser or mail client.
package links

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener opens a URL.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// SystemOpener launches the platform URL handler.
type SystemOpener struct {
	// GOOS overrides runtime.GOOS. Used by tests.
	GOOS string
	// Run executes the command. Defaults to starting it without waiting.
	Run func(cmd *exec.Cmd) error
}

// Open validates target and hands it to the platform launcher.
func (o SystemOpener) Open(ctx context.Context, target string) error {
	if err := Validate(target); err != nil {
		return err
	}

	name, args := Command(o.goos(), target)
	cmd := exec.CommandContext(ctx, name, args...)

	run := o.Run
	if run == nil {
		run = func(cmd *exec.Cmd) error {
			if err := cmd.Start(); err != nil {
				return err
			}
			go func() { _ = cmd.Wait() }()
			return nil
		}
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

func (o SystemOpener) goos() string {
	if o.GOOS != "" {
		return o.GOOS
	}
	return runtime.GOOS
}

// Command returns the launcher invocation for goos.
func Command(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Validate accepts absolute http, https and mailto URLs.
func Validate(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", target, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("invalid url %q: missing host", target)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("invalid url %q: missing address", target)
		}
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	return nil
}

// Nop discards every request. Used for SSH sessions where the server
// cannot reach the client's browser.
type Nop struct{}

// Open implements Opener.
func (Nop) Open(context.Context, string) error { return nil }
