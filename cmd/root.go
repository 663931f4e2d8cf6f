package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"sparkshelf/config"
	"sparkshelf/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sparkshelf",
	Short: "SparkShelf - robotics project showcase",
	Long: `SparkShelf serves the list of published robotics projects stored in a
hosted Postgres backend, either directly or through its REST gateway.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configPath); err != nil {
			return err
		}
		logger.Init()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.AddCommand(serveCmd(), checkCmd(), listCmd())
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
