package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/materna-health/materna/internal/extraction"
	"github.com/materna-health/materna/internal/gestation"
	"github.com/materna-health/materna/internal/infrastructure/monitoring/metrics"
	"github.com/materna-health/materna/pkg/errors"
)

// extensionMIME maps common report file extensions to their content type;
// unknown extensions fall back to content sniffing.
var extensionMIME = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

func detectMIME(name string, data []byte) string {
	if mime, ok := extensionMIME[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	return http.DetectContentType(data)
}

func newAnalyzeCmd() *cobra.Command {
	var (
		mimeOverride string
		rawText      string
		week         int
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Extract clinical values from a report file or raw text",
		Long:  "Analyze runs the full extraction pipeline on an uploaded PDF or image\nreport: text acquisition, redaction, report type detection, value\nextraction and urgency evaluation.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 && rawText == "" {
				return errors.New(errors.CodeInvalidParam, "provide a report file or --text")
			}

			processor, err := newProcessor(cliCtx)
			if err != nil {
				return err
			}

			var result *extraction.Result
			if rawText != "" {
				result = processor.ProcessText(rawText, 1.0)
			} else {
				path := args[0]
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrap(err, errors.CodeAcquisitionFailure, "reading report file")
				}
				mime := mimeOverride
				if mime == "" {
					mime = detectMIME(path, data)
				}
				result, err = processor.Process(cmd.Context(), extraction.InputFile{
					Name: filepath.Base(path),
					MIME: mime,
					Data: data,
				})
				if err != nil {
					return err
				}
			}

			return printAnalysis(cmd, cliCtx, result, week)
		},
	}

	cmd.Flags().StringVar(&mimeOverride, "mime", "", "override content type detection (e.g. application/pdf)")
	cmd.Flags().StringVar(&rawText, "text", "", "analyze raw report text instead of a file")
	cmd.Flags().IntVar(&week, "week", 0, "current gestational week, adds context to the output")

	return cmd
}

// newProcessor builds an extraction processor from the CLI configuration.
// When metrics collection is enabled the Prometheus implementation records
// into a process-local registry; otherwise the noop sink is used.
func newProcessor(cliCtx *CLIContext) (*extraction.Processor, error) {
	opts := []extraction.Option{}
	if cliCtx.Config.Metrics.Enabled {
		m, err := metrics.NewPrometheusMetrics(nil)
		if err != nil {
			return nil, err
		}
		opts = append(opts, extraction.WithMetrics(m))
	}
	return extraction.NewProcessor(cliCtx.Config, cliCtx.Logger, opts...)
}

// printAnalysis renders the pipeline result. In text mode it prints the
// summary block, the urgency verdict and, when a week was supplied, the
// gestational context.
func printAnalysis(cmd *cobra.Command, cliCtx *CLIContext, result *extraction.Result, week int) error {
	if strings.ToLower(cliCtx.OutputFormat) == "json" {
		out := struct {
			*extraction.Result
			GestationalContext *gestation.Context `json:"gestationalContext,omitempty"`
		}{Result: result}
		if week > 0 {
			ctx := gestation.ContextFor(week)
			out.GestationalContext = &ctx
		}
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, result.Summary)
	fmt.Fprintf(w, "Source: %s (confidence %.2f)\n", result.Source, result.Confidence)

	if result.Urgency.Urgent {
		fmt.Fprintln(w, "URGENT: seek care promptly")
		for _, reason := range result.Urgency.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	} else {
		fmt.Fprintln(w, "No urgent findings")
	}

	if week > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, gestation.BuildClinicalContext(week))
	}
	return nil
}
