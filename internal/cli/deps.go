package cli

import (
	"io"
	"os"

	"github.com/xolan/devjournal/internal/config"
	"github.com/xolan/devjournal/internal/logging"
	"github.com/xolan/devjournal/internal/service"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is nil until the command tree has resolved the configuration
	Services *service.Services
	Config   config.Config
	Logger   *zap.Logger

	// Styled enables colors in tables and messages (stdout is a terminal)
	Styled bool
}

// DefaultDeps creates a new Deps bound to the process streams.
// Services are wired later, once flags and config are known.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Config: config.DefaultConfig(),
		Logger: logging.Nop(),
		Styled: IsTerminal(os.Stdout),
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services, cfg config.Config, logger *zap.Logger) *Deps {
	d := DefaultDeps()
	d.Services = services
	d.Config = cfg
	if logger != nil {
		d.Logger = logger
	}
	return d
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
