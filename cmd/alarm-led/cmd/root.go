package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-led/internal/config"
	"github.com/oshokin/alarm-led/internal/service/led"
	"github.com/oshokin/alarm-led/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// statusAddress overrides the status API listen address.
	statusAddress string

	// rootCmd represents the base command for running the alarm service.
	rootCmd = &cobra.Command{
		Use:   "alarm-led",
		Short: "Latch an alarm on threshold breaches and publish its status over MQTT.",
		Long: `Subscribes to sensor readings on the MQTT data topic and compares the "value"
metric with the configured threshold. Once a reading exceeds it the alarm stays on
until the service is reactivated. The alarm status is published to the status topic
every publish.rate seconds.

Send SIGHUP to reload the properties section of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &led.Options{
				ConfigPath:    configPath,
				StatusAddress: statusAddress,
			}

			return led.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-led CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&statusAddress, "status-addr", "s", "", "listen address of the status API, overrides the config")
}
