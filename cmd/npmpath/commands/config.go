package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/npmpath/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefaultConfig(a.opts.FS, a.configFile, force); err != nil {
				return err
			}
			a.logger.Info().Str("path", a.configFile).Msg("configuration written")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, a.configFile)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.AddCommand(initCmd)

	return cmd
}
