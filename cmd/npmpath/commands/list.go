package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/style"
)

func newListCmd(a *app) *cobra.Command {
	var (
		format  string
		explain bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := a.composer(a.opts.Env).Compose(a.options())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch format {
			case "text":
				outputFormat := style.DetectFormat(out)
				style.Configure(outputFormat)
				renderer := style.NewRenderer(outputFormat)
				if explain {
					if _, err := fmt.Fprintln(out, renderer.RenderLegend()); err != nil {
						return err
					}
				}
				_, err = fmt.Fprintln(out, renderer.RenderEntries(comp.Entries))
				return err
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(comp)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(comp); err != nil {
					return err
				}
				return enc.Close()
			}
			return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format).
				WithDetail("format", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)
	cmd.Flags().BoolVar(&explain, "explain", false, MsgFlagExplain)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
