package app

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/tungetti/teelog/internal/config"
	"github.com/tungetti/teelog/internal/console"
	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/errors"
	"github.com/tungetti/teelog/internal/logging"
)

// App wires configuration, the logging facility and the operator logger.
type App struct {
	container *Container
	lifecycle *Lifecycle
	opts      Options
}

// Options configures the application.
type Options struct {
	Version   string
	BuildTime string
	GitCommit string
	// ConfigPath is the YAML file to load. Empty means defaults and environment only.
	ConfigPath string
	// Overrides adjusts the loaded configuration before validation, e.g. from flags.
	Overrides func(*config.Config)
	// Console receives the facility's console lines. Defaults to os.Stdout.
	Console io.Writer
	// Operator reports the tool's own messages. Defaults to a stderr console logger.
	Operator        console.Logger
	ShutdownTimeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Version:         "unknown",
		BuildTime:       "unknown",
		GitCommit:       "unknown",
		ShutdownTimeout: constants.ShutdownTimeout,
	}
}

// New creates a new application with the given options.
func New(opts Options) *App {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = constants.ShutdownTimeout
	}
	return &App{
		container: NewContainer(),
		lifecycle: NewLifecycle(opts.ShutdownTimeout),
		opts:      opts,
	}
}

// Initialize loads and validates the configuration and builds the facility.
// The facility is not started; see Start.
func (a *App) Initialize(ctx context.Context) error {
	operator := a.opts.Operator
	if operator == nil {
		operator = console.New(console.DefaultOptions())
	}
	a.container.SetConsole(operator)

	cfg, err := config.NewLoader(a.opts.ConfigPath).Load()
	if err != nil {
		return errors.Wrap(errors.Configuration, "failed to load config", err).WithOp("app.Initialize")
	}
	if a.opts.Overrides != nil {
		a.opts.Overrides(cfg)
	}
	if err := config.NewValidator().ValidateOrError(cfg); err != nil {
		return err
	}
	a.container.SetConfig(cfg)
	operator.Debug("configuration loaded", "path", a.opts.ConfigPath, "directory", cfg.LogDirectory)

	facility := logging.New(cfg.LoggingOptions(a.opts.Console))
	a.container.SetFacility(facility)
	logging.SetDefault(facility)

	return a.container.Validate()
}

// Start initializes the facility with startingMessage and registers its
// Close with the lifecycle.
func (a *App) Start(startingMessage string) error {
	facility := a.container.GetFacility()
	if facility == nil {
		return errors.Wrap(errors.State, "application not initialized", errors.ErrNotInitialized).WithOp("app.Start")
	}
	if err := facility.Init(startingMessage); err != nil {
		return err
	}
	a.lifecycle.OnShutdown(func(ctx context.Context) error {
		return facility.Close()
	})
	a.container.GetConsole().Debug("facility started",
		"version", a.opts.Version,
		"file", facility.LogFilePath(),
	)
	return nil
}

// Run calls fn with the facility. A panic in fn is reported through
// PrintException and returned as an error.
func (a *App) Run(ctx context.Context, fn func(ctx context.Context, l *logging.Logger) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = a.handlePanic(r)
		}
	}()
	return fn(ctx, a.container.GetFacility())
}

// Pipe logs every line read from r at Info until EOF or ctx is done.
func (a *App) Pipe(ctx context.Context, r io.Reader) error {
	facility := a.container.GetFacility()
	if facility == nil {
		return errors.Wrap(errors.State, "application not initialized", errors.ErrNotInitialized).WithOp("app.Pipe")
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return errors.Wrap(errors.FileSystem, "failed to read input", err).WithOp("app.Pipe")
					}
				default:
				}
				return nil
			}
			facility.Info(line)
		}
	}
}

// Shutdown runs the registered shutdown functions.
func (a *App) Shutdown() error {
	return a.lifecycle.Shutdown()
}

// RunWithLifecycle runs fn and shuts down when it returns or a termination
// signal arrives.
func (a *App) RunWithLifecycle(ctx context.Context, fn func(ctx context.Context, l *logging.Logger) error) error {
	ctx, stop := a.lifecycle.SignalContext(ctx)
	defer stop()

	runErr := a.Run(ctx, fn)
	if err := a.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Container returns the dependency container.
func (a *App) Container() *Container {
	return a.container
}

// Lifecycle returns the lifecycle manager.
func (a *App) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Version returns the application version.
func (a *App) Version() string {
	return a.opts.Version
}

// handlePanic reports a recovered panic and converts it to an error.
func (a *App) handlePanic(r interface{}) error {
	err, ok := r.(error)
	if !ok {
		err = &logging.PanicError{Value: r}
	}
	err = pkgerrors.WithStack(err)

	if facility := a.container.GetFacility(); facility != nil {
		facility.PrintException(err)
	} else {
		os.Stderr.WriteString(logging.FormatException(err) + "\n")
	}

	return errors.Wrap(errors.Unknown, "recovered panic", err).WithOp("app.Run")
}
