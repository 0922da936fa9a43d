package commands

// Message constants
const (
	// Command descriptions
	MsgRootShort       = "Print the search path npm gives to package scripts"
	MsgListShort       = "List the search path entries and where each comes from"
	MsgExecShort       = "Run a command with the composed search path"
	MsgShellShort      = "Print a snippet that exports the composed search path"
	MsgConfigShort     = "Inspect and initialise the configuration"
	MsgConfigShowShort = "Print the effective configuration as TOML"
	MsgConfigInitShort = "Write a commented default configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	MsgRootLong = `npmpath prints the search path that npm builds before running a package
script: every node_modules/.bin directory from the working directory up to
the filesystem root (nearest first), the directory of the running
executable, the node-gyp-bin directory bundled with npm, then the
inherited PATH without duplicates.`

	MsgExecLong = `Exec composes the search path for the working directory, applies it to a
copy of the current environment and runs the command there. The command is
looked up on the composed path, so locally installed tools win. Its exit
code becomes npmpath's exit code.`

	MsgShellLong = `Shell prints code that sets PATH to the composed search path. Without an
argument the dialect is taken from $SHELL, then from shell.default in the
configuration. Use --hook to print the line to add to your shell rc file.`

	MsgRootExample = `  npmpath
  npmpath --cwd ./packages/web
  npmpath --npm /usr/local/lib/node_modules/npm`

	MsgListExample = `  npmpath list
  npmpath list --format json
  npmpath list --explain`

	MsgExecExample = `  npmpath exec -- eslint .
  npmpath --cwd app exec -- tsc --noEmit`

	MsgShellExample = `  eval "$(npmpath shell bash)"
  npmpath shell fish | source
  npmpath shell --hook zsh >> ~/.zshrc`

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCwd       = "Directory to start the ascent from (default: current directory)"
	MsgFlagNpm       = "npm installation directory (default: detected)"
	MsgFlagMarkerDir = "Dependency directory probed at each level"
	MsgFlagBinDir    = "Binary directory inside the dependency directory"
	MsgFlagConfig    = "Configuration file (default: $XDG_CONFIG_HOME/npmpath/config.toml)"
	MsgFlagSet       = "Override a configuration key, e.g. --set root.tool=pnpm (repeatable)"
	MsgFlagFormat    = "Output format: text, json or yaml"
	MsgFlagExplain   = "Describe each entry source"
	MsgFlagHook      = "Print the rc-file line instead of the snippet"
	MsgFlagForce     = "Overwrite an existing configuration file"
	MsgFlagManDir    = "Write one page per command into this directory instead of printing the root page"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgVersionLine   = "npmpath version %s\n"
	MsgCommitLine    = "  commit: %s\n"
	MsgBuiltLine     = "  built:  %s\n"

	// Error messages
	MsgErrUnknownFormat = "unknown format %q (want text, json or yaml)"
	MsgErrNotFound      = "%s not found on the composed search path"
	MsgErrRunCommand    = "failed to run %s"
	MsgErrNoWorkDir     = "working directory %s does not exist"
)
