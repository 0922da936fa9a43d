package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/npmpath/pkg/npmpath"
	"github.com/arthur-debert/npmpath/pkg/shell"
)

func newShellCmd(a *app) *cobra.Command {
	var hook bool

	validArgs := make([]string, len(shell.Supported))
	for i, sh := range shell.Supported {
		validArgs[i] = string(sh)
	}

	cmd := &cobra.Command{
		Use:       "shell [bash|zsh|fish|powershell]",
		Short:     MsgShellShort,
		Long:      MsgShellLong,
		Example:   MsgShellExample,
		ValidArgs: validArgs,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := a.shellFor(args)
			if err != nil {
				return err
			}

			var out string
			if hook {
				out, err = shell.Hook(sh, cmd.Root().Name())
				out += "\n"
			} else {
				var comp *npmpath.Composition
				comp, err = a.composer(a.opts.Env).Compose(a.options())
				if err != nil {
					return err
				}
				out, err = shell.Snippet(sh, comp.PathKey, comp.String(), npmpath.Separator)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&hook, "hook", false, MsgFlagHook)
	return cmd
}

// shellFor picks the dialect: argument, then $SHELL, then configuration
func (a *app) shellFor(args []string) (shell.Shell, error) {
	if len(args) == 1 {
		return shell.Parse(args[0])
	}
	fallback, err := shell.Parse(a.cfg.Shell.Default)
	if err != nil {
		return "", err
	}
	return shell.Detect(a.opts.Env, fallback), nil
}
