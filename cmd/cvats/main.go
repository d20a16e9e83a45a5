package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"resume-ats/internal/i18n"
	"resume-ats/internal/schemas"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/resume/model"
)

const app = "cvats"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "cvats scores, previews and exports ATS-friendly CVs",
		Long:          "cvats checks a CV for ATS compatibility, renders the printable preview and exports it to PDF or DOCX.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cvats.yaml in current directory, if present)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("locale", "l", "", "output locale (id or en)")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initConfig reads the optional config file. An explicit --config that cannot be read is an error.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadConfig layers the config file and flags over the environment configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if v := viper.GetString("locale"); v != "" {
		cfg.Locale = v
	}
	if v := viper.GetString("port"); v != "" {
		cfg.Port = v
	}
	if v := viper.GetString("chrome-path"); v != "" {
		cfg.ChromePath = v
	}
	if v := viper.GetDuration("export-timeout"); v > 0 {
		cfg.ExportTimeout = v
	}
	if v := viper.GetString("export-store"); v != "" {
		cfg.ExportStore = v
	}
	if v := viper.GetString("local-store-dir"); v != "" {
		cfg.LocalStoreDir = v
	}
	if v := viper.GetString("s3-bucket"); v != "" {
		cfg.S3Bucket = v
	}
	if v := viper.GetString("s3-prefix"); v != "" {
		cfg.S3Prefix = v
	}
	cfg.LogJSON = cfg.LogJSON || viper.GetBool("json")
	cfg.LogDebug = cfg.LogDebug || viper.GetBool("debug")
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := telemetry.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func resolveLocale(cfg config.Config) i18n.Locale {
	loc, err := i18n.ParseLocale(cfg.Locale)
	if err != nil {
		return i18n.Default
	}
	return loc
}

// readResume loads a JSON résumé file and checks it against the schema.
func readResume(path string) (model.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	r, err := schemas.DecodeResume(data)
	if err != nil {
		return model.Resume{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
