package cmd

import (
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"

	config "github.com/inference-gateway/touchbridge/config"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
)

// V is the viper instance backing the loaded configuration
var V *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "touchbridge",
	Short: "Forward operator gestures to remote mobile devices",
	Long: `touchbridge turns pointer input captured on a scaled, rotatable preview of a
device screen into tap, touch-and-hold and swipe commands expressed in the
device's native coordinates, and sends them to an Appium automation server.

It runs as a WebSocket service for operator UIs (touchbridge serve) and offers
one-shot commands for checking how a device profile maps coordinates.`,
	SilenceUsage: true,
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringSlice("env-file", []string{".env"}, "env files loaded before reading configuration")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	envFiles, _ := rootCmd.PersistentFlags().GetStringSlice("env-file")
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	V = config.NewViper()

	cfg, err := getConfigFromViper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config from %s: %v\n", configPath(), err)
		os.Exit(1)
	}

	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	logger.Init(verbose, logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

func configPath() string {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		return config.DefaultConfigPath
	}
	return path
}

// getConfigFromViper loads and validates the configuration
func getConfigFromViper() (*config.Config, error) {
	if V == nil {
		V = config.NewViper()
	}
	return config.Load(V, configPath())
}
