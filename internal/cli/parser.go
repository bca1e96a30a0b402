package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tungetti/teelog/internal/constants"
	"github.com/tungetti/teelog/internal/ui/theme"
)

// ParseResult holds the result of parsing command line arguments.
type ParseResult struct {
	// Command is the parsed command.
	Command Command

	// GlobalFlags contains the global flag values.
	GlobalFlags GlobalFlags

	// RunFlags contains run command flag values.
	RunFlags RunFlags

	// PruneFlags contains prune command flag values.
	PruneFlags PruneFlags

	// ListFlags contains list command flag values.
	ListFlags ListFlags

	// TailFlags contains tail command flag values.
	TailFlags TailFlags

	// ViewFlags contains view command flag values.
	ViewFlags ViewFlags

	// ConfigFlags contains config command flag values.
	ConfigFlags ConfigFlags

	// Args contains any remaining positional arguments.
	Args []string

	// ShowHelp indicates that help should be displayed.
	ShowHelp bool

	// HelpCommand is the command to show help for (when using "help <command>").
	HelpCommand string
}

// Parser handles command line argument parsing.
type Parser struct {
	programName string
	version     string
	buildTime   string
	gitCommit   string

	// styled renders the usage title with lipgloss.
	styled bool
}

// NewParser creates a new CLI parser with build information.
func NewParser(programName, version, buildTime, gitCommit string) *Parser {
	return &Parser{
		programName: programName,
		version:     version,
		buildTime:   buildTime,
		gitCommit:   gitCommit,
	}
}

// SetStyled enables a styled title in Usage.
func (p *Parser) SetStyled(styled bool) {
	p.styled = styled
}

// Parse parses command line arguments and returns a ParseResult.
// The args parameter should not include the program name (typically os.Args[1:]).
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	result := &ParseResult{}

	if len(args) == 0 {
		result.ShowHelp = true
		return result, nil
	}

	// Help flags win over everything else, up to a "--" separator.
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "-h" || arg == "--help" || arg == "-help" {
			result.ShowHelp = true
			return result, nil
		}
	}

	// The flag package stops at the first non-flag argument.
	globalFs := p.createGlobalFlagSet(&result.GlobalFlags)
	globalFs.SetOutput(io.Discard)

	if err := globalFs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid global flags: %w", err)
	}

	remaining := globalFs.Args()

	if len(remaining) == 0 {
		result.ShowHelp = true
		return result, nil
	}

	if err := result.GlobalFlags.Validate(); err != nil {
		return nil, err
	}

	cmdStr := remaining[0]
	result.Command = ParseCommand(cmdStr)

	if result.Command == CommandNone {
		return nil, fmt.Errorf("unknown command: %s", cmdStr)
	}

	if err := p.parseCommandFlags(result, remaining[1:]); err != nil {
		return nil, err
	}

	return result, nil
}

// createGlobalFlagSet creates a FlagSet with global flag definitions.
func (p *Parser) createGlobalFlagSet(flags *GlobalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("global", flag.ContinueOnError)

	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose output")
	fs.BoolVar(&flags.Verbose, "v", false, "Enable verbose output (shorthand)")

	fs.BoolVar(&flags.Quiet, "quiet", false, "Suppress non-essential output")
	fs.BoolVar(&flags.Quiet, "q", false, "Suppress non-essential output (shorthand)")

	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")
	fs.StringVar(&flags.ConfigFile, "c", "", "Path to config file (shorthand)")

	fs.StringVar(&flags.LogDir, "dir", "", "Log directory")
	fs.StringVar(&flags.LogDir, "d", "", "Log directory (shorthand)")

	fs.StringVar(&flags.Verbosity, "verbosity", "", "Call-site verbosity (minimal, normal, more, maximum)")

	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	return fs
}

// parseCommandFlags parses flags specific to each command.
func (p *Parser) parseCommandFlags(result *ParseResult, args []string) error {
	switch result.Command {
	case CommandRun:
		return p.parseRunFlags(result, args)
	case CommandPrune:
		return p.parsePruneFlags(result, args)
	case CommandList:
		return p.parseListFlags(result, args)
	case CommandTail:
		return p.parseTailFlags(result, args)
	case CommandView:
		return p.parseViewFlags(result, args)
	case CommandConfig:
		return p.parseConfigFlags(result, args)
	case CommandHelp:
		return p.parseHelpFlags(result, args)
	case CommandVersion:
		result.Args = args
		return nil
	}
	return nil
}

func (p *Parser) parseRunFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&result.RunFlags.Message, "message", "Started", "Start message")
	fs.StringVar(&result.RunFlags.Message, "m", "Started", "Start message (shorthand)")
	fs.StringVar(&result.RunFlags.Thread, "thread", "", "Thread name")
	fs.StringVar(&result.RunFlags.Thread, "t", "", "Thread name (shorthand)")
	fs.StringVar(&result.RunFlags.Severity, "severity", "info", "Severity for message arguments")
	fs.StringVar(&result.RunFlags.Severity, "s", "info", "Severity (shorthand)")
	fs.BoolVar(&result.RunFlags.Stdin, "stdin", false, "Log standard input")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid run flags: %w", err)
	}
	if err := result.RunFlags.Validate(); err != nil {
		return err
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parsePruneFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("prune", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&result.PruneFlags.Keep, "keep", -1, "Number of files to keep")
	fs.IntVar(&result.PruneFlags.Keep, "k", -1, "Number of files to keep (shorthand)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid prune flags: %w", err)
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parseListFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&result.ListFlags.Paths, "paths", false, "Print absolute paths")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid list flags: %w", err)
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parseTailFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("tail", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&result.TailFlags.Lines, "lines", constants.DefaultTailLines, "Number of lines")
	fs.IntVar(&result.TailFlags.Lines, "n", constants.DefaultTailLines, "Number of lines (shorthand)")
	fs.BoolVar(&result.TailFlags.Follow, "follow", false, "Follow appended lines")
	fs.BoolVar(&result.TailFlags.Follow, "f", false, "Follow appended lines (shorthand)")
	fs.StringVar(&result.TailFlags.Severity, "severity", "", "Minimum severity")
	fs.StringVar(&result.TailFlags.Severity, "s", "", "Minimum severity (shorthand)")
	fs.BoolVar(&result.TailFlags.Raw, "raw", false, "Print lines unchanged")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid tail flags: %w", err)
	}
	if err := result.TailFlags.Validate(); err != nil {
		return err
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parseViewFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&result.ViewFlags.Follow, "follow", true, "Stream appended lines")
	fs.BoolVar(&result.ViewFlags.Follow, "f", true, "Stream appended lines (shorthand)")
	fs.StringVar(&result.ViewFlags.Severity, "severity", "", "Initial minimum severity")
	fs.StringVar(&result.ViewFlags.Severity, "s", "", "Initial minimum severity (shorthand)")
	fs.StringVar(&result.ViewFlags.Theme, "theme", string(theme.ThemeDark), "Color theme")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid view flags: %w", err)
	}
	if err := result.ViewFlags.Validate(); err != nil {
		return err
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parseConfigFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&result.ConfigFlags.Defaults, "defaults", false, "Print built-in defaults")
	fs.BoolVar(&result.ConfigFlags.Save, "save", false, "Write the config file")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid config flags: %w", err)
	}
	if err := result.ConfigFlags.Validate(); err != nil {
		return err
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parseHelpFlags(result *ParseResult, args []string) error {
	result.ShowHelp = true
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		result.HelpCommand = args[0]
	}
	return nil
}

// Usage returns the main usage string.
func (p *Parser) Usage() string {
	var b strings.Builder

	title := fmt.Sprintf("%s - %s", p.programName, constants.AppDescription)
	if p.styled {
		title = theme.DefaultTheme().Styles.Title.Render(title)
	}
	b.WriteString(title + "\n\n")
	b.WriteString("Usage:\n")
	b.WriteString(fmt.Sprintf("  %s [global flags] <command> [command flags]\n\n", p.programName))

	b.WriteString("Commands:\n")
	for _, cmd := range Commands() {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", cmd.Name, cmd.Description))
	}

	b.WriteString("\nGlobal Flags:\n")
	b.WriteString("  -v, --verbose     Enable verbose output\n")
	b.WriteString("  -q, --quiet       Suppress non-essential output\n")
	b.WriteString("  -c, --config      Path to config file\n")
	b.WriteString("  -d, --dir         Log directory\n")
	b.WriteString("      --verbosity   Call-site verbosity (minimal, normal, more, maximum)\n")
	b.WriteString("      --no-color    Disable colored output\n")

	b.WriteString(fmt.Sprintf("\nUse \"%s help <command>\" for more information about a command.\n", p.programName))

	return b.String()
}

// CommandUsage returns the usage string for a specific command.
func (p *Parser) CommandUsage(cmd string) string {
	parsedCmd := ParseCommand(cmd)
	if parsedCmd == CommandNone {
		return fmt.Sprintf("Unknown command: %s\n\nRun '%s help' for usage.\n", cmd, p.programName)
	}

	info := GetCommandInfo(parsedCmd)
	if info == nil {
		return fmt.Sprintf("No help available for: %s\n", cmd)
	}

	var b strings.Builder
	description := info.Description
	if p.styled {
		description = lipgloss.NewStyle().Bold(true).Render(description)
	}
	b.WriteString(fmt.Sprintf("%s\n\n", description))
	b.WriteString(fmt.Sprintf("Usage:\n  %s\n\n", info.Usage))

	if info.LongDescription != "" {
		b.WriteString(info.LongDescription)
		b.WriteString("\n")
	}

	return b.String()
}

// VersionString returns formatted version information.
func (p *Parser) VersionString() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s version %s\n", p.programName, p.version))

	if p.buildTime != "" && p.buildTime != "unknown" {
		b.WriteString(fmt.Sprintf("Build time: %s\n", p.buildTime))
	}

	if p.gitCommit != "" && p.gitCommit != "unknown" {
		commit := p.gitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		b.WriteString(fmt.Sprintf("Git commit: %s\n", commit))
	}

	return b.String()
}

// VersionInfo returns version components for structured output.
func (p *Parser) VersionInfo() map[string]string {
	return map[string]string{
		"version":   p.version,
		"buildTime": p.buildTime,
		"gitCommit": p.gitCommit,
	}
}
