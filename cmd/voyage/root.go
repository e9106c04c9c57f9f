package voyage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soundprediction/go-voyage/pkg/config"
	"github.com/soundprediction/go-voyage/pkg/embedder"
	"github.com/soundprediction/go-voyage/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "voyage",
		Short: "Voyage: Text Embedding Tool",
		Long: `Voyage is a command line tool for the go-voyage embedding client.
It turns text into numeric embedding vectors via the Voyage AI API and
demonstrates similarity ranking over embedded documents.

Complete documentation is available at https://github.com/soundprediction/go-voyage`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration
			initConfig()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.voyage.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load a .env file if one exists so API keys can live next to the project.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".voyage" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".voyage")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogger builds the process logger from the log configuration.
func setupLogger(cfg config.LogConfig) *slog.Logger {
	return logger.New(cfg.Level, cfg.Format)
}

// newEmbedderClient builds an embedding client for the configured provider.
func newEmbedderClient(cfg *config.Config, logger *slog.Logger) (embedder.Client, error) {
	var client embedder.Client

	switch cfg.Embedding.Provider {
	case "voyageai", "":
		voyageClient, err := embedder.NewVoyageEmbedderWithOptions(cfg.Embedding.Options())
		if err != nil {
			return nil, err
		}
		client = voyageClient
	case "openai":
		client = embedder.NewOpenAIEmbedder(cfg.Embedding.APIKey, embedder.Config{
			Model:      cfg.Embedding.Model,
			BaseURL:    cfg.Embedding.BaseURL,
			Dimensions: cfg.Embedding.OutputDimension,
		})
	case "embedeverything":
		localClient, err := embedder.NewEmbedEverythingClient(embedder.Config{
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.OutputDimension,
		})
		if err != nil {
			return nil, err
		}
		client = localClient
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}

	if cfg.CircuitBreaker.Enabled {
		client = embedder.NewCircuitBreakerClient(client, cfg.CircuitBreaker, logger, cfg.Embedding.Provider)
	}
	return client, nil
}
