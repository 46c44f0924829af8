package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/musher-dev/basictext"
	"github.com/musher-dev/basictext/internal/config"
	clierrors "github.com/musher-dev/basictext/internal/errors"
	"github.com/musher-dev/basictext/internal/observability"
	"github.com/musher-dev/basictext/internal/output"
	"github.com/musher-dev/basictext/internal/transducer"
)

func newValidateCmd() *cobra.Command {
	var colorEscapes bool

	cmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "Check that input is already Basic Text",
		Long: `Validate reads input (a file path, or stdin when omitted or "-") and
reports whether it is already a valid Basic Text stream: Stream-Safe
NFC, no disallowed boundary scalars, no unresolved escape sequences, and
ending in a newline.

Validate never repairs input; use 'basictext convert' for that.`,
		Example: `  basictext validate input.txt
  cat input.txt | basictext validate`,
		Args: atMostOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			logger := observability.FromContext(cmd.Context())

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			in, err := openInput(path)
			if err != nil {
				return err
			}
			defer in.Close()

			cfg := config.Load()
			var opts []transducer.Option
			if colorEscapes || cfg.ColorEscapes() {
				opts = append(opts, transducer.WithColorEscapes())
			}

			w := basictext.NewWriter(discardWriteCloser{}, opts...)
			validateErr := func() error {
				if _, err := io.Copy(w, in); err != nil {
					return err
				}
				return w.End()
			}()

			if validateErr != nil {
				observability.LogViolation(logger, path, validateErr)

				if out.JSON {
					report := map[string]any{
						"valid": false,
						"error": validateErr.Error(),
					}
					var verr *transducer.Error
					if errors.As(validateErr, &verr) {
						report["kind"] = string(verr.Kind)
						report["byte_offset"] = verr.ByteOffset
						report["scalar"] = int32(verr.Scalar)
					}
					return out.PrintJSON(report)
				}
				return clierrors.ConversionRejected(path, validateErr)
			}

			if out.JSON {
				return out.PrintJSON(map[string]any{"valid": true})
			}

			out.Success("%s is valid Basic Text", displayPath(path))

			return nil
		},
	}

	cmd.Flags().BoolVar(&colorEscapes, "color-escapes", false, "Treat SGR color escape sequences as allowed rather than a violation")

	return cmd
}

type discardWriteCloser struct{}

func (discardWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardWriteCloser) Close() error                { return nil }
