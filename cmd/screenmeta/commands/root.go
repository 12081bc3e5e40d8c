// Package commands implements the CLI commands for screenmeta.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/screenmeta/screenmeta/internal/extractor"
	"github.com/screenmeta/screenmeta/internal/llm"
	"github.com/screenmeta/screenmeta/internal/logger"
	"github.com/screenmeta/screenmeta/internal/schema"
)

var rootCmd = &cobra.Command{
	Use:   "screenmeta",
	Short: "LLM-powered metadata extraction for movie and show descriptions",
	Long: `Screenmeta sends catalog descriptions to the Anthropic API, asks for
structured metadata (genres, themes, mood, target audience, content
warnings), validates the JSON, retries on failure, and scores extraction
quality against ground truth.

Examples:
  # Smoke-test the extractor on the first 5 catalog rows
  screenmeta test --dataset data/netflix_dataset.csv

  # Run the full evaluation pipeline and save a report
  screenmeta evaluate --dataset data/netflix_dataset.csv --samples 50

  # Extract metadata interactively from stdin
  screenmeta extract`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.screenmeta.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().String("dataset", "data/netflix_dataset.csv", "path to the labeled catalog CSV")
	rootCmd.PersistentFlags().StringP("model", "m", "", "Anthropic model name")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Anthropic API key (or ANTHROPIC_API_KEY)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".screenmeta")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SCREENMETA")
	viper.AutomaticEnv()

	_ = viper.BindEnv("api_key", "ANTHROPIC_API_KEY")

	// Config file is optional.
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initLogger configures logging from the global flags.
func initLogger() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})
}

// newExtractor builds the extractor from configuration. It fails before any
// extraction when the API credential is missing.
func newExtractor(opts ...extractor.Option) (*extractor.Extractor, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured: set ANTHROPIC_API_KEY or use --api-key")
	}

	provider, err := llm.NewAnthropicProvider(llm.ProviderConfig{
		APIKey: apiKey,
		Model:  viper.GetString("model"),
	})
	if err != nil {
		return nil, err
	}

	return extractor.New(provider, schema.PromptDescription(), opts...), nil
}
