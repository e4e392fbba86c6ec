package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/xolan/devjournal/internal/service"
	"go.uber.org/zap"
)

func withBrowser(t *testing.T, fn func(*service.Services, *zap.Logger) error) {
	t.Helper()
	original := runBrowser
	runBrowser = fn
	t.Cleanup(func() { runBrowser = original })
}

func TestBrowseCommand(t *testing.T) {
	d, _, _, exitCode := testDeps(t)

	var got *service.Services
	withBrowser(t, func(s *service.Services, _ *zap.Logger) error {
		got = s
		return nil
	})

	browseCmd.Run(browseCmd, []string{})

	if got != d.Services {
		t.Error("browser should receive the configured services")
	}
	if *exitCode != -1 {
		t.Errorf("unexpected exit code %d", *exitCode)
	}
}

func TestBrowseCommand_Error(t *testing.T) {
	_, _, stderr, exitCode := testDeps(t)
	withBrowser(t, func(*service.Services, *zap.Logger) error {
		return errors.New("no tty")
	})

	browseCmd.Run(browseCmd, []string{})

	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "no tty") {
		t.Errorf("expected the error on stderr, got %q", stderr.String())
	}
}
