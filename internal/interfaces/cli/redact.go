package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/materna-health/materna/internal/extraction"
	"github.com/materna-health/materna/pkg/errors"
)

func newRedactCmd() *cobra.Command {
	var rawText string

	cmd := &cobra.Command{
		Use:   "redact [file]",
		Short: "Strip identifying information from report text",
		Long:  "Redact replaces provider names, patient names, record numbers and\nphone numbers with placeholder tokens. Reads from the given file,\n--text, or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			switch {
			case rawText != "":
				text = rawText
			case len(args) == 1:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return errors.Wrap(err, errors.CodeInvalidParam, "reading input file")
				}
				text = string(data)
			default:
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.CodeInvalidParam, "reading stdin")
				}
				text = string(data)
			}

			fmt.Fprintln(cmd.OutOrStdout(), extraction.RedactText(text))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawText, "text", "", "redact this text instead of reading a file or stdin")

	return cmd
}
