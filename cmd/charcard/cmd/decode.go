package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/charcard/pkg/card"
	"golang.org/x/sync/errgroup"
)

// decodeResult is the outcome of decoding one file
type decodeResult struct {
	File     string         `json:"file" yaml:"file"`
	Found    bool           `json:"found" yaml:"found"`
	Profile  *card.Profile  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Settings *card.Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <file>...",
	Short: "Print the profile embedded in one or more images",
	Long: `Print the character profile embedded in each image. Images without a
profile are reported and do not count as failures.

Example:
  charcard decode aria_card.png
  charcard decode -o yaml aria_card.png
  charcard decode -o settings --jobs 4 cards/*.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		jobs, _ := cmd.Flags().GetInt("jobs")

		switch format {
		case formatJSON, formatYAML, formatSettings:
		default:
			return fmt.Errorf("unsupported output format %q", format)
		}

		results, err := decodeFiles(cmd.Context(), args, jobs)
		if err != nil {
			return err
		}

		if err := outputDecodeResults(cmd.OutOrStdout(), format, results); err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be decoded", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("output", "o", formatJSON, "Output format (json, yaml, settings)")
	decodeCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Number of files decoded in parallel")
}

// decodeFiles decodes every path with at most jobs decodes in flight.
// Per-file failures are recorded in the results; only cancellation is
// returned as an error.
func decodeFiles(ctx context.Context, paths []string, jobs int) ([]decodeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}

	codec := cardCodec()
	results := make([]decodeResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r := decodeResult{File: path}
			defer func() { results[i] = r }()

			data, err := readImage(path)
			if err != nil {
				r.err = err
				r.Error = err.Error()
				return nil
			}

			profile, found, err := codec.DecodeProfile(data)
			if err != nil {
				r.err = err
				r.Error = err.Error()
				logger.WithError(err).WithField("file", path).Debug("decode failed")
				return nil
			}

			r.Found = found
			if found {
				settings := profile.Settings()
				r.Profile = profile
				r.Settings = &settings
			}
			logger.WithFields(logrus.Fields{"file": path, "found": found}).Debug("image decoded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// outputDecodeResults prints a single result as a bare document and several
// results as a list.
func outputDecodeResults(w io.Writer, format string, results []decodeResult) error {
	if format == formatSettings {
		return outputDecodeSettings(w, results)
	}

	if len(results) == 1 {
		r := results[0]
		switch {
		case r.err != nil:
			_, err := fmt.Fprintf(w, "%s: %s\n", r.File, r.Error)
			return err
		case !r.Found:
			_, err := fmt.Fprintf(w, "%s: no embedded profile\n", r.File)
			return err
		default:
			return writeStructured(w, format, r.Profile)
		}
	}

	list := make([]decodeResult, len(results))
	for i, r := range results {
		r.Settings = nil
		list[i] = r
	}
	return writeStructured(w, format, list)
}

func outputDecodeSettings(w io.Writer, results []decodeResult) error {
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", r.File)
		}

		switch {
		case r.err != nil:
			fmt.Fprintf(w, "%s: %s\n", r.File, r.Error)
		case !r.Found:
			fmt.Fprintf(w, "%s: no embedded profile\n", r.File)
		default:
			if err := outputSettings(w, *r.Settings); err != nil {
				return err
			}
		}
	}
	return nil
}
