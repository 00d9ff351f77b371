package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blogem/radiocalco/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "radiocalco",
	Short: "Radio Calco backend",
	Long: `Radio Calco serves the JSON API for users, students and song
ratings, and keeps an audit log of every user and student change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFiles...); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
}

var (
	logLevel   string
	configPath string
	envFiles   []string
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("could not execute root command")
	}
}

// setupLogging applies the log level from --log-level, falling back to LOG_LEVEL
func setupLogging(cmd *cobra.Command) error {
	level := logLevel
	if !cmd.Flags().Changed("log-level") {
		if cfg, err := config.Load(configPath); err == nil {
			level = cfg.LogLevel
		}
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return errors.WithMessage(err, "cannot parse log-level")
	}
	log.SetLevel(parsed)

	// Add some millisecond precision to log timestamps
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = "2006-01-02T15:04:05.999Z07:00"
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)

	log.Debug("debug logging enabled")
	return nil
}

// flagOverrides copies explicitly set command line flags onto the configuration
type flagOverrides interface {
	Apply(cmd *cobra.Command, cfg *config.Config)
}

// loadConfig reads the configuration and applies command line overrides
func loadConfig(cmd *cobra.Command, f flagOverrides) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.WithMessage(err, "could not load configuration")
	}
	f.Apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid configuration")
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (trace,debug,info,warn,error) (default info, or LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Optional YAML/TOML/JSON config file; environment variables override it")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"},
		"Environment files to load before reading configuration")
}
