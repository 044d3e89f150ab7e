package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/materna-health/materna/internal/gestation"
	"github.com/materna-health/materna/pkg/errors"
)

func newContextCmd() *cobra.Command {
	var clinical bool

	cmd := &cobra.Command{
		Use:   "context <week>",
		Short: "Show gestational context for a pregnancy week",
		Long:  "Context prints stage information for the given gestational week:\ntrimester, expected development, typical symptoms and normal ranges.\nWeeks outside 4-42 are clamped to that range.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			week, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Newf(errors.CodeInvalidParam, "invalid week %q", args[0])
			}

			if clinical {
				fmt.Fprintln(cmd.OutOrStdout(), gestation.BuildClinicalContext(week))
				return nil
			}

			ctx := gestation.ContextFor(week)
			if cliCtx.OutputFormat == "text" {
				return printText(cmd, ctx.WeekDescription)
			}
			return PrintResult(cmd, ctx)
		},
	}

	cmd.Flags().BoolVar(&clinical, "clinical", false, "print the clinical reference block instead of the stage summary")

	return cmd
}
