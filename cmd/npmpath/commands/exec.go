package commands

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/logging"
	"github.com/arthur-debert/npmpath/pkg/npmpath"
)

func newExecCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "exec -- <command> [args...]",
		Short:                 MsgExecShort,
		Long:                  MsgExecLong,
		Example:               MsgExecExample,
		Args:                  cobra.MinimumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExec(cmd, args)
		},
	}
	// everything after the command name belongs to the command
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) runExec(cmd *cobra.Command, args []string) error {
	env := environment.FromEnviron(a.opts.Env.Environ())
	comp, err := a.composer(env).Compose(a.options())
	if err != nil {
		return err
	}
	if info, err := a.opts.FS.Stat(comp.Cwd); err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, MsgErrNoWorkDir, comp.Cwd).
			WithDetail("cwd", comp.Cwd)
	}

	path := comp.String()
	if err := env.Setenv(comp.PathKey, path); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "cannot set %s", comp.PathKey)
	}

	name := args[0]
	bin := name
	if !strings.ContainsAny(name, `/\`) {
		bin, err = npmpath.LookPath(a.opts.FS, name, path, env.Getenv("PATHEXT"))
		if err != nil {
			return errors.Wrapf(err, errors.ErrCommandExec, MsgErrNotFound, name).
				WithDetail("command", name)
		}
	}

	runLogger := logging.WithFields(map[string]interface{}{
		"cwd":     comp.Cwd,
		"entries": len(comp.Entries),
	})
	runLogger.Debug().Msg("Running with composed path")
	logging.LogCommand(bin, args[1:])
	child := exec.CommandContext(cmd.Context(), bin, args[1:]...)
	child.Args[0] = name
	child.Env = env.Environ()
	child.Dir = comp.Cwd
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitCode(exitErr.ProcessState)
			a.logger.Debug().Int("code", code).Str("command", name).Msg("command exited")
			return &ExitError{Code: code}
		}
		return errors.Wrapf(err, errors.ErrCommandExec, MsgErrRunCommand, name).
			WithDetail("command", name)
	}
	return nil
}

// exitCode reports the child's status the way shells do: 128+signal for a
// child killed by a signal, 1 when no status is available
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return 1
	}
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
