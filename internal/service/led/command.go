package led

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/alarm-led/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-led/internal/config"
	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
	"github.com/oshokin/alarm-led/internal/transport/mqtt"
	"github.com/oshokin/alarm-led/internal/version"
)

// Options controls the alarm-led process.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// StatusAddress overrides the listen address of the status API.
	StatusAddress string
}

// transport is the broker connection the scheduler is bound to.
type transport interface {
	domain.Publisher
	domain.Subscriber

	Connect(ctx context.Context) error
	Disconnect(ctx context.Context)
}

// Run loads the settings, connects to the broker and publishes the alarm
// status until ctx is canceled. SIGHUP reloads the component properties.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-led")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.StatusAddress != "" {
		cfg.StatusAddress = opts.StatusAddress
	}

	applyLogLevels(ctx, cfg)
	logger.InfoKV(ctx, "Starting alarm-led", "version", version.Short(), "broker", cfg.MQTT.Broker)

	client := mqtt.New(ctx, &mqtt.Options{
		Broker:      cfg.MQTT.Broker,
		ClientID:    cfg.MQTT.ClientID,
		Username:    cfg.MQTT.Username,
		Password:    cfg.MQTT.Password,
		DataTopic:   cfg.MQTT.DataTopic,
		StatusTopic: cfg.MQTT.StatusTopic,
		QoS:         cfg.MQTT.QoS,
		Retained:    cfg.MQTT.Retained,
		Timeout:     cfg.MQTT.Timeout,
	})

	reloads := make(chan os.Signal, 1)
	signal.Notify(reloads, syscall.SIGHUP)

	defer signal.Stop(reloads)

	return serve(ctx, opts, cfg, client, reloads)
}

// serve runs the scheduler on top of an unconnected transport.
func serve(
	ctx context.Context,
	opts *Options,
	cfg *config.Config,
	client transport,
	reloads <-chan os.Signal,
) error {
	scheduler := NewScheduler(ctx)
	scheduler.SetSubscriber(client)
	scheduler.SetPublisher(client)

	defer func() {
		scheduler.Stop()
		scheduler.Wait()
		scheduler.UnsetPublisher(client)
		scheduler.UnsetSubscriber(client)
		client.Disconnect(ctx)
	}()

	if err := scheduler.Start(ctx, cfg.Properties); err != nil {
		return err
	}

	if err := client.Connect(ctx); err != nil {
		return err
	}

	stopStatus, err := startStatusServer(ctx, cfg.StatusAddress, scheduler)
	if err != nil {
		return err
	}

	defer stopStatus()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Shutting down")

			return nil
		case sig := <-reloads:
			logger.InfoKV(ctx, "Reloading settings", "signal", sig.String())
			cfg = reload(ctx, opts, cfg, scheduler)
		}
	}
}

// reload re-reads the settings and updates the running scheduler.
// It returns the settings now in effect; on a load failure that is current.
func reload(ctx context.Context, opts *Options, current *config.Config, scheduler *Scheduler) *config.Config {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.ErrorKV(ctx, "Cannot reload settings", "error", err)

		return current
	}

	if opts.StatusAddress != "" {
		cfg.StatusAddress = opts.StatusAddress
	}

	applyLogLevels(ctx, cfg)

	if cfg.MQTT != current.MQTT || cfg.StatusAddress != current.StatusAddress {
		logger.Warn(ctx, "Broker and status API settings are applied on restart only")
	}

	if err = scheduler.Update(ctx, cfg.Properties); err != nil {
		logger.ErrorKV(ctx, "Cannot apply reloaded properties", "error", err)
	}

	return cfg
}

// applyLogLevels sets the application level and routes library diagnostics.
func applyLogLevels(ctx context.Context, cfg *config.Config) {
	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	if level, ok := logger.ParseLogLevel(cfg.MQTT.LogLevel); ok {
		mqtt.SetLibraryLogger(ctx, level)
	}
}

// startStatusServer serves the status and health APIs on address.
// An empty address disables them; the returned stop function is then a no-op.
func startStatusServer(ctx context.Context, address string, scheduler *Scheduler) (func(), error) {
	if address == "" {
		return func() {}, nil
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	grpcServer := grpc.NewServer()
	api.Register(grpcServer, api.NewServer(scheduler))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	logger.InfoKV(ctx, "Status API listening", "address", lis.Addr().String())

	done := make(chan struct{})

	go func() {
		defer close(done)

		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.ErrorKV(ctx, "Status API stopped", "error", err)
		}
	}()

	return func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		<-done
		logger.Info(ctx, "Status API stopped")
	}, nil
}
