package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Local development keeps overrides in .env
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "geolead",
		Short:        "Geo-lead notification and deduplication engine",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(sweepCmd())
	root.AddCommand(distanceCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
