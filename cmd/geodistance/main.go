package main

import (
	"context"
	"fmt"
	"geodistance/internal/adapters/distance"
	"geodistance/internal/config"
	"geodistance/internal/platform/obs"
	"geodistance/internal/ports"
	"geodistance/internal/report"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// newCalculator is replaced in tests.
var newCalculator = func(radius float64) ports.DistanceCalculator {
	return distance.NewHaversineProvider(radius)
}

// main is the composition root: it loads configuration, wires the Haversine
// provider behind the DistanceCalculator port and runs the command.
func main() {
	envErr := godotenv.Load()

	logger := obs.NewLogger(config.Get(config.LogKey, "warn"), os.Stderr)
	if envErr != nil {
		logger.Debug().Msg("No .env file found (using environment variables)")
	}

	cmd, err := newRootCmd()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	format   string
	radius   float64
	logLevel string
}

func newRootCmd() (*cobra.Command, error) {
	radius, err := config.GetFloat(config.RadiusKey, 0)
	if err != nil {
		return nil, err
	}

	opts := rootOptions{
		format:   config.Get(config.FormatKey, string(report.FormatText)),
		radius:   radius,
		logLevel: config.Get(config.LogKey, "warn"),
	}

	cmd := &cobra.Command{
		Use:   "geodistance <start> <end>",
		Short: "Great-circle distance in meters between two [latitude, longitude] points",
		Example: `  geodistance '[48.8566, 2.3522]' '[51.5074, -0.1278]'
  geodistance --format geojson '[48.8566, 2.3522]' '[51.5074, -0.1278]'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(cmd, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", opts.format, "output format: text, table or geojson")
	flags.Float64Var(&opts.radius, "radius", opts.radius, "sphere radius in meters (0 uses the mean Earth radius)")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level written to stderr")

	return cmd, nil
}

func runDistance(cmd *cobra.Command, opts rootOptions, startArg, endArg string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return errors.Wrap(err, "geodistance")
	}

	logger := obs.NewLogger(opts.logLevel, cmd.ErrOrStderr())
	ctx := logger.WithContext(cmd.Context())

	calc := newCalculator(opts.radius)
	res, err := calc.Distance(ctx, decodeArg(startArg), decodeArg(endArg))
	if err != nil {
		// Validation messages are returned verbatim.
		return err
	}

	logger.Info().
		Stringer("start", res.Start).
		Stringer("end", res.End).
		Float64("meters", res.DistanceMeters).
		Msg("distance computed")

	return report.Write(cmd.OutOrStdout(), format, res)
}

// decodeArg turns a JSON argument into plain Go values. Text that is not
// JSON is kept as a string and left for the calculator to reject.
func decodeArg(s string) any {
	if !gjson.Valid(s) {
		return s
	}
	return gjson.Parse(s).Value()
}
