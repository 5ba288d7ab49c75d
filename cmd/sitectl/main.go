package main

import (
	"fmt"
	"os"

	"github.com/webbplats/site/internal/logging"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	// stdout carries command output
	logConfig := &logging.LogConfig{
		Level:      logging.LevelWarn,
		Stderr:     true,
		File:       "~/.sitectl/sitectl.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Inspect the site's content sources",
	Long: `sitectl queries the content API and homepage configuration with the same
client, cache rules and placeholder normalization the server uses, and prints
the results as JSON.

Configuration is read from the environment and .env files, like the server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("no-spinner", false, "Disable the progress spinner")
	rootCmd.AddCommand(homepageCmd, postsCmd, postCmd, pageCmd, categoriesCmd, categoryCmd, slugsCmd, versionCmd)
}

func main() {
	initLogger()
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
