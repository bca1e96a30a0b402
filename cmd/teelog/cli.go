package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/tungetti/teelog/internal/app"
	"github.com/tungetti/teelog/internal/cli"
	"github.com/tungetti/teelog/internal/config"
	"github.com/tungetti/teelog/internal/console"
	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/errors"
	"github.com/tungetti/teelog/internal/logging"
	"github.com/tungetti/teelog/internal/ui"
	"github.com/tungetti/teelog/internal/ui/theme"
	"github.com/tungetti/teelog/internal/viewer"
)

// CLI encapsulates the command-line interface for teelog.
type CLI struct {
	parser     *cli.Parser
	config     *config.Config
	configPath string
	operator   console.Logger
	quiet      bool

	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCLI creates a new CLI instance bound to the process streams.
func NewCLI() *CLI {
	return &CLI{
		parser: cli.NewParser(constants.AppName, Version, BuildTime, GitCommit),
		ctx:    context.Background(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run parses arguments and executes the appropriate command.
// It returns an exit code suitable for os.Exit().
func (c *CLI) Run(args []string) int {
	result, err := c.parser.Parse(args)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		fmt.Fprintf(c.stderr, "Run '%s help' for usage.\n", constants.AppName)
		return constants.ExitValidation.Int()
	}

	c.parser.SetStyled(!result.GlobalFlags.NoColor && logging.DetectColor(c.stdout))
	if result.ShowHelp {
		return c.showHelp(result)
	}
	if result.Command == cli.CommandVersion {
		return c.cmdVersion()
	}

	c.quiet = result.GlobalFlags.Quiet
	c.operator = console.New(console.Options{
		Verbose:    result.GlobalFlags.Verbose,
		Output:     c.stderr,
		TimeFormat: "15:04:05",
		NoColor:    result.GlobalFlags.NoColor,
	})

	if err := c.loadConfig(result); err != nil {
		c.operator.Error("failed to load configuration", "err", err)
		return exitCodeFor(err)
	}

	return c.executeCommand(result)
}

// loadConfig loads configuration from file and environment, then applies
// the global flags and validates the result.
func (c *CLI) loadConfig(result *cli.ParseResult) error {
	configPath := result.GlobalFlags.ConfigFile
	if configPath == "" {
		configPath = config.DefaultConfig().ConfigPath()
	}

	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return err
	}
	applyGlobalFlags(cfg, result.GlobalFlags)
	if err := config.NewValidator().ValidateOrError(cfg); err != nil {
		return err
	}

	c.config = cfg
	c.configPath = configPath
	c.operator.Debug("configuration loaded", "path", configPath)
	return nil
}

// applyGlobalFlags applies CLI global flags to the configuration.
// CLI flags take precedence over config file values.
func applyGlobalFlags(cfg *config.Config, flags cli.GlobalFlags) {
	if flags.LogDir != "" {
		cfg.LogDirectory = flags.LogDir
	}
	if flags.Verbosity != "" {
		cfg.Verbosity = flags.Verbosity
	}
	if flags.NoColor {
		cfg.Color = config.ColorNever
	}
}

// showHelp displays help information and returns an exit code.
func (c *CLI) showHelp(result *cli.ParseResult) int {
	if result.HelpCommand != "" {
		fmt.Fprint(c.stdout, c.parser.CommandUsage(result.HelpCommand))
	} else {
		fmt.Fprint(c.stdout, c.parser.Usage())
	}
	return constants.ExitSuccess.Int()
}

// executeCommand runs the appropriate command handler.
func (c *CLI) executeCommand(result *cli.ParseResult) int {
	var err error
	switch result.Command {
	case cli.CommandRun:
		err = c.cmdRun(result)
	case cli.CommandPrune:
		err = c.cmdPrune(result)
	case cli.CommandList:
		err = c.cmdList(result)
	case cli.CommandTail:
		err = c.cmdTail(result)
	case cli.CommandView:
		err = c.cmdView(result)
	case cli.CommandConfig:
		err = c.cmdConfig(result)
	default:
		fmt.Fprint(c.stdout, c.parser.Usage())
		return constants.ExitSuccess.Int()
	}

	if err != nil {
		c.operator.Error(result.Command.String()+" failed", "err", err)
		return exitCodeFor(err)
	}
	return constants.ExitSuccess.Int()
}

// cmdVersion displays version information.
func (c *CLI) cmdVersion() int {
	fmt.Fprint(c.stdout, c.parser.VersionString())
	return constants.ExitSuccess.Int()
}

// cmdRun starts a log file, then logs the trailing arguments and, with
// --stdin, standard input. The file is closed on return.
func (c *CLI) cmdRun(result *cli.ParseResult) error {
	flags := result.RunFlags
	application := app.New(app.Options{
		Version:    Version,
		BuildTime:  BuildTime,
		GitCommit:  GitCommit,
		ConfigPath: c.configPath,
		Overrides: func(cfg *config.Config) {
			applyGlobalFlags(cfg, result.GlobalFlags)
			if flags.Thread != "" {
				cfg.ThreadName = flags.Thread
			}
		},
		Console:  c.stdout,
		Operator: c.operator,
	})

	if err := application.Initialize(c.ctx); err != nil {
		return err
	}
	if err := application.Start(flags.Message); err != nil {
		return err
	}

	sev := cli.SeverityOrDefault(flags.Severity, logging.SeverityInfo)
	return application.RunWithLifecycle(c.ctx, func(ctx context.Context, l *logging.Logger) error {
		for _, msg := range result.Args {
			l.Log(sev, msg)
		}
		if flags.Stdin {
			if isTerminal(c.stdin) {
				c.operator.Info("reading lines from the terminal, end with Ctrl+D")
			}
			return application.Pipe(ctx, c.stdin)
		}
		return nil
	})
}

// cmdPrune deletes the oldest log files beyond the limit.
func (c *CLI) cmdPrune(result *cli.ParseResult) error {
	keep := result.PruneFlags.Keep
	if keep < 0 {
		keep = c.config.MaxLogFiles
	}

	deleted, err := logging.Prune(c.config.LogDirectory, keep, logging.WithReporter(c.operator))
	if err != nil {
		return err
	}
	if !c.quiet {
		fmt.Fprintf(c.stdout, "Deleted %d log file(s) from %s\n", deleted, c.config.LogDirectory)
	}
	return nil
}

// cmdList prints the log files, newest first.
func (c *CLI) cmdList(result *cli.ParseResult) error {
	files, err := viewer.ListLogFiles(c.config.LogDirectory)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Wrapf(errors.NotFound, errors.ErrNoLogFiles, "no log files in %s", c.config.LogDirectory).
			WithOp("cli.list")
	}

	for _, f := range files {
		name := f.Name
		if result.ListFlags.Paths {
			name = f.Path
			if abs, err := filepath.Abs(f.Path); err == nil {
				name = abs
			}
		}
		fmt.Fprintln(c.stdout, name)
	}
	return nil
}

// cmdTail prints the last lines of a log file and, with --follow, every
// line appended until interrupted.
func (c *CLI) cmdTail(result *cli.ParseResult) error {
	flags := result.TailFlags
	path, err := c.resolveLogFile(result.Args)
	if err != nil {
		return err
	}

	lines, offset, err := viewer.TailOffset(path, flags.Lines)
	if err != nil {
		return err
	}
	minSev := cli.SeverityOrDefault(flags.Severity, logging.SeverityDebug)
	for _, line := range lines {
		c.printLine(line, minSev, flags.Raw)
	}

	if !flags.Follow {
		return nil
	}

	lifecycle := app.NewLifecycle(constants.ShutdownTimeout)
	ctx, stop := lifecycle.SignalContext(c.ctx)
	defer stop()

	out := make(chan string, 64)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(out)
		return viewer.FollowWith(gctx, path, out, viewer.FollowOptions{Offset: offset})
	})

	for line := range out {
		c.printLine(line, minSev, flags.Raw)
	}

	if err := g.Wait(); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (c *CLI) printLine(line string, minSev logging.Severity, raw bool) {
	rec := viewer.ParseLine(line)
	if rec.HasSeverity && rec.Severity < minSev {
		return
	}
	if raw {
		fmt.Fprintln(c.stdout, line)
		return
	}
	fmt.Fprintln(c.stdout, viewer.StripANSI(line))
}

// cmdView opens a log file in the interactive viewer.
func (c *CLI) cmdView(result *cli.ParseResult) error {
	flags := result.ViewFlags
	if !isTerminal(c.stdout) {
		return errors.New(errors.Terminal, "view needs an interactive terminal, use tail instead").
			WithOp("cli.view")
	}
	path, err := c.resolveLogFile(result.Args)
	if err != nil {
		return err
	}

	th := theme.GetTheme(theme.ThemeName(flags.Theme))
	return ui.Run(c.ctx, ui.RunOptions{
		Options: ui.Options{
			Path:        path,
			Follow:      flags.Follow,
			MinSeverity: cli.SeverityOrDefault(flags.Severity, logging.SeverityDebug),
			Theme:       th,
		},
	})
}

// cmdConfig prints or saves the effective configuration.
func (c *CLI) cmdConfig(result *cli.ParseResult) error {
	cfg := c.config
	if result.ConfigFlags.Defaults {
		cfg = config.DefaultConfig()
	}

	if result.ConfigFlags.Save {
		if err := config.SaveConfig(cfg, c.configPath); err != nil {
			return err
		}
		if !c.quiet {
			fmt.Fprintf(c.stdout, "Saved configuration to %s\n", c.configPath)
		}
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = c.stdout.Write(data)
	return err
}

// resolveLogFile returns the file named in args or the newest log file.
func (c *CLI) resolveLogFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	latest, err := viewer.Latest(c.config.LogDirectory)
	if err != nil {
		return "", err
	}
	c.operator.Debug("using newest log file", "file", latest.Name)
	return latest.Path, nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// exitCodeFor maps an error to a process exit code.
func exitCodeFor(err error) int {
	switch errors.GetCode(err) {
	case errors.NotFound:
		return constants.ExitNotFound.Int()
	case errors.FileSystem, errors.Rotation:
		return constants.ExitFileSystem.Int()
	case errors.Configuration, errors.Validation:
		return constants.ExitValidation.Int()
	default:
		return constants.ExitError.Int()
	}
}
