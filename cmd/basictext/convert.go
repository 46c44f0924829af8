package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/musher-dev/basictext"
	"github.com/musher-dev/basictext/internal/config"
	clierrors "github.com/musher-dev/basictext/internal/errors"
	"github.com/musher-dev/basictext/internal/observability"
	"github.com/musher-dev/basictext/internal/output"
	"github.com/musher-dev/basictext/internal/prompt"
	"github.com/musher-dev/basictext/internal/transducer"
)

func newConvertCmd() *cobra.Command {
	var (
		outputPath string
		strict     bool
		force      bool
		nelCompat  bool
		lspsCompat bool
		crlfCompat bool
		bomCompat  bool
		color      bool
	)

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert input into a valid Basic Text rendering",
		Long: `Convert reads input (a file path, or stdin when omitted or "-") and
writes a Basic Text rendering of it.

By default conversion is lossy: boundary violations are repaired with a
combining-grapheme joiner, disallowed scalars are substituted or
stripped, and escape sequences are elided. With --strict, conversion
fails at the first rule violation instead of repairing it.`,
		Example: `  basictext convert input.txt -o output.txt
  cat input.txt | basictext convert --strict`,
		Args: atMostOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			logger := observability.FromContext(cmd.Context())

			ctx, span := observability.Tracer("basictext/cmd").Start(cmd.Context(), "convert")
			defer span.End()
			cmd.SetContext(ctx)
			span.SetAttributes(attribute.Bool("strict", strict))

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			in, err := openInput(path)
			if err != nil {
				return err
			}
			defer in.Close()

			if outputPath != "" && outputPath != "-" && !force {
				if _, statErr := os.Stat(outputPath); statErr == nil {
					p := prompt.New(out)
					if !p.CanPrompt() {
						return clierrors.InstallConflict(outputPath)
					}
					ok, promptErr := p.Confirm(fmt.Sprintf("%s already exists. Overwrite?", outputPath), false)
					if promptErr != nil {
						return clierrors.UnderlyingIOFailed("read confirmation", promptErr)
					}
					if !ok {
						return clierrors.InstallConflict(outputPath)
					}
				}
			}

			dst, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer dst.Close()

			cfg := config.Load()
			opts := resolveOptions(cfg, nelCompat, lspsCompat, crlfCompat, bomCompat, color)

			logger.Debug("converting input", "component", "cli", "event.type", "convert.start", "strict", strict)

			if strict {
				w := basictext.NewWriter(dst, opts...)
				if _, err := io.Copy(w, in); err != nil {
					span.SetStatus(codes.Error, "conversion rejected")
					observability.LogViolation(logger, path, err)
					return clierrors.ConversionRejected(path, err)
				}
				if err := w.End(); err != nil {
					span.SetStatus(codes.Error, "conversion rejected")
					observability.LogViolation(logger, path, err)
					return clierrors.ConversionRejected(path, err)
				}
			} else {
				r := basictext.NewReader(in, opts...)
				n, err := io.Copy(dst, r)
				if err != nil {
					span.SetStatus(codes.Error, "underlying IO failure")
					return clierrors.UnderlyingIOFailed("convert", err)
				}
				span.SetAttributes(attribute.Int64("bytes_written", n))
			}

			if !out.Quiet && !out.JSON {
				out.Success("converted %s", displayPath(path))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (defaults to stdout)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject violations instead of repairing them")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output path without confirmation")
	cmd.Flags().BoolVar(&nelCompat, "nel-compat", false, "Map NEL (U+0085) to a newline instead of a space")
	cmd.Flags().BoolVar(&lspsCompat, "lsps-compat", false, "Map LS/PS (U+2028/U+2029) to a newline instead of a space")
	cmd.Flags().BoolVar(&crlfCompat, "crlf-compat", false, "Emit CRLF line endings")
	cmd.Flags().BoolVar(&bomCompat, "bom-compat", false, "Prepend a byte-order mark")
	cmd.Flags().BoolVar(&color, "color-escapes", false, "Allow SGR color escape sequences through")

	return cmd
}

// resolveOptions layers command-line flags over the persisted
// configuration's compatibility defaults.
func resolveOptions(cfg *config.Config, nel, lsps, crlf, bom, colorEscapes bool) []transducer.Option {
	var opts []transducer.Option

	if nel || cfg.NELCompat() {
		opts = append(opts, transducer.WithNELCompat())
	}
	if lsps || cfg.LSPSCompat() {
		opts = append(opts, transducer.WithLSPSCompat())
	}
	if crlf || cfg.CRLFCompat() {
		opts = append(opts, transducer.WithCRLFCompat())
	}
	if bom || cfg.BOMCompat() {
		opts = append(opts, transducer.WithBOMCompat())
	}
	if colorEscapes || cfg.ColorEscapes() {
		opts = append(opts, transducer.WithColorEscapes())
	}

	return opts
}

func displayPath(path string) string {
	if path == "" {
		return "stdin"
	}
	return fmt.Sprintf("%q", path)
}
