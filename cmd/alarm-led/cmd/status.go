package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	api "github.com/oshokin/alarm-led/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-led/internal/config"
)

// callTimeout bounds each status request.
var callTimeout time.Duration

// statusCmd queries the status API of a running service.
var statusCmd = &cobra.Command{
	Use:   "status <address>",
	Short: "Print the alarm status of a running alarm-led.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		client, err := api.Dial(ctx, args[0], api.WithCallTimeout(callTimeout))
		if err != nil {
			return err
		}

		defer func() {
			_ = client.Close()
		}()

		health, err := client.Health(ctx)
		if err != nil {
			return err
		}

		response, err := client.GetStatus(ctx)
		if err != nil {
			return err
		}

		body, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "health: %s\n%s\n", health, body)

		return nil
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	statusCmd.Flags().DurationVarP(&callTimeout, "timeout", "t", config.DefaultTimeout, "timeout of each request")
}
