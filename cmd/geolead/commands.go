package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"geolead/internal/domain/geo"
	"geolead/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the push worker, pg listener and retention scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx.New(
				engineOptions(),
				injectHandler(),
				injectDelivery(),
				fx.Invoke(
					startServer,
				),
			).Run()

			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete merchant alerts past retention once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				retention  usecase.RetentionUsecase
				supervisor usecase.Supervisor
			)
			app := fx.New(
				engineOptions(),
				fx.NopLogger,
				fx.Populate(&retention, &supervisor),
			)
			if err := app.Err(); err != nil {
				return errors.Wrap(err, "build app")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := app.Start(ctx); err != nil {
				return errors.Wrap(err, "start app")
			}
			defer func() { _ = app.Stop(context.Background()) }()

			result := retention.SweepExpiredAlerts(ctx)
			if verdict := supervisor.Resolve(ctx, result); verdict == usecase.VerdictRetry {
				return errors.Wrap(result.Err, "sweep failed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired alerts\n", result.Count)

			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Give up after this long")

	return cmd
}

func distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance lat1 lng1 lat2 lng2",
		Short: "Print the great-circle distance in meters between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Errorf("argument %d is not a number: %q", i+1, arg)
				}
				coords[i] = v
			}

			meters := geo.DistanceMeters(coords[0], coords[1], coords[2], coords[3])
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", meters)

			return nil
		},
	}
}
