package cli

// Command represents a CLI command type.
type Command int

const (
	// CommandNone represents no command or an unrecognized command.
	CommandNone Command = iota

	// CommandRun initializes the facility and logs a start message, any
	// trailing arguments and optionally standard input.
	CommandRun

	// CommandPrune deletes the oldest log files beyond the retention limit.
	CommandPrune

	// CommandList shows the log files in the log directory, newest first.
	CommandList

	// CommandTail prints the last lines of a log file and optionally follows it.
	CommandTail

	// CommandView opens a log file in the interactive viewer.
	CommandView

	// CommandConfig prints the effective configuration as YAML.
	CommandConfig

	// CommandVersion represents the version command for displaying build information.
	CommandVersion

	// CommandHelp represents the help command for showing usage information.
	CommandHelp
)

// String returns the command name as a string.
func (c Command) String() string {
	switch c {
	case CommandRun:
		return "run"
	case CommandPrune:
		return "prune"
	case CommandList:
		return "list"
	case CommandTail:
		return "tail"
	case CommandView:
		return "view"
	case CommandConfig:
		return "config"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	default:
		return ""
	}
}

// IsValid returns true if the command is a recognized command.
func (c Command) IsValid() bool {
	return c > CommandNone && c <= CommandHelp
}

// CommandInfo holds metadata about a command.
type CommandInfo struct {
	// Name is the primary command name.
	Name string

	// Aliases are alternative names for the command.
	Aliases []string

	// Description is a brief description of what the command does.
	Description string

	// Usage shows how to invoke the command.
	Usage string

	// LongDescription provides detailed help text for the command.
	LongDescription string
}

// Commands returns all available commands with their metadata.
func Commands() []CommandInfo {
	return []CommandInfo{
		{
			Name:        "run",
			Aliases:     []string{"r", "log"},
			Description: "Start a log file and write messages to it",
			Usage:       "teelog run [flags] [message...]",
			LongDescription: `Create a new log file, write the start message and prune old files.

Each trailing argument is logged as one Info line. With --stdin, every
line read from standard input is logged as well, so the command can sit
at the end of a pipe.

Flags:
  -m, --message TEXT      Start message (default "Started")
  -t, --thread NAME       Thread name written in the thread segment
  -s, --severity LEVEL    Severity for trailing arguments (default info)
      --stdin             Log standard input line by line

Examples:
  teelog run "build finished"
  make 2>&1 | teelog run --stdin -m "make"`,
		},
		{
			Name:        "prune",
			Aliases:     []string{"p"},
			Description: "Delete the oldest log files beyond the limit",
			Usage:       "teelog prune [flags]",
			LongDescription: `Delete the oldest log files until at most the configured number remain.

Only files named after the log file pattern are counted or deleted.

Flags:
  -k, --keep N    Number of files to keep (default from config)

Examples:
  teelog prune           Apply the configured limit
  teelog prune --keep 1  Keep only the newest file`,
		},
		{
			Name:        "list",
			Aliases:     []string{"l", "ls"},
			Description: "List log files, newest first",
			Usage:       "teelog list [flags]",
			LongDescription: `List the log files in the log directory, newest first.

Flags:
  --paths    Print absolute paths instead of names

Examples:
  teelog list
  teelog --dir /var/log/app list --paths`,
		},
		{
			Name:        "tail",
			Aliases:     []string{"t"},
			Description: "Print the last lines of a log file",
			Usage:       "teelog tail [flags] [file]",
			LongDescription: `Print the last lines of a log file. Without a file argument the newest
log file in the log directory is used.

Flags:
  -n, --lines N           Number of lines to print (default 20, 0 for all)
  -f, --follow            Keep printing lines as they are appended
  -s, --severity LEVEL    Hide lines below this severity
      --raw               Print lines unchanged, keeping color codes

Examples:
  teelog tail -n 50
  teelog tail -f -s warning`,
		},
		{
			Name:        "view",
			Aliases:     []string{"v"},
			Description: "Browse a log file in the terminal viewer",
			Usage:       "teelog view [flags] [file]",
			LongDescription: `Open a log file in a scrollable viewer. Without a file argument the newest
log file in the log directory is used.

Flags:
  -f, --follow            Stream appended lines (default true)
  -s, --severity LEVEL    Initial minimum severity (default debug)
      --theme NAME        Color theme: dark, high-contrast

Examples:
  teelog view
  teelog view --follow=false Logs/03-05-2024\ 14-07-09-042.log`,
		},
		{
			Name:        "config",
			Aliases:     []string{"c", "cfg"},
			Description: "Print the effective configuration",
			Usage:       "teelog config [flags]",
			LongDescription: `Print the configuration after defaults, the config file, environment
variables and global flags have been applied.

Flags:
  --defaults    Print the built-in defaults instead
  --save        Write the effective configuration to the config file

Examples:
  teelog config
  teelog --no-color config --save`,
		},
		{
			Name:        "version",
			Aliases:     []string{},
			Description: "Show version information",
			Usage:       "teelog version",
			LongDescription: `Display version information about teelog.

Shows the version number, build time, and git commit hash.`,
		},
		{
			Name:        "help",
			Aliases:     []string{"h"},
			Description: "Show help for a command",
			Usage:       "teelog help [command]",
			LongDescription: `Display help information.

When called without arguments, shows general help and available commands.
When called with a command name, shows detailed help for that command.

Examples:
  teelog help        Show general help
  teelog help tail   Show help for tail command`,
		},
	}
}

// GetCommandInfo returns the CommandInfo for a given command.
// Returns nil if the command is not found.
func GetCommandInfo(cmd Command) *CommandInfo {
	if !cmd.IsValid() {
		return nil
	}

	cmds := Commands()
	for i := range cmds {
		if cmds[i].Name == cmd.String() {
			return &cmds[i]
		}
	}
	return nil
}

// ParseCommand parses a string into a Command.
// It recognizes both primary command names and aliases.
func ParseCommand(s string) Command {
	for _, info := range Commands() {
		if s == info.Name {
			return commandFromName(info.Name)
		}
		for _, alias := range info.Aliases {
			if s == alias {
				return commandFromName(info.Name)
			}
		}
	}
	return CommandNone
}

// commandFromName converts a command name string to a Command type.
func commandFromName(name string) Command {
	switch name {
	case "run":
		return CommandRun
	case "prune":
		return CommandPrune
	case "list":
		return CommandList
	case "tail":
		return CommandTail
	case "view":
		return CommandView
	case "config":
		return CommandConfig
	case "version":
		return CommandVersion
	case "help":
		return CommandHelp
	default:
		return CommandNone
	}
}
