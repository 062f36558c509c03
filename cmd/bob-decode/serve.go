package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/christiaansc/Codec-BoBAssistant/internal/bridge"
	"github.com/christiaansc/Codec-BoBAssistant/internal/config"
	"github.com/christiaansc/Codec-BoBAssistant/internal/decoder"
	"github.com/christiaansc/Codec-BoBAssistant/internal/dedup"
	"github.com/christiaansc/Codec-BoBAssistant/internal/logging"
	"github.com/christiaansc/Codec-BoBAssistant/internal/monitor"
	"github.com/christiaansc/Codec-BoBAssistant/internal/server"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /{payload} over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	bridgeCmd = &cobra.Command{
		Use:   "bridge",
		Short: "Decode uplinks from MQTT and republish the results",
		Args:  cobra.NoArgs,
		RunE:  runBridge,
	}
)

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		cfg := config.Default()
		cfg.ApplyEnv()
		return cfg, cfg.Validate()
	}
	return config.Load(configPath)
}

func setup(cmd *cobra.Command) (context.Context, context.CancelFunc, *config.Config, *logrus.Logger, *monitor.Metrics, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	log := logging.New(cfg.Log)
	var metrics *monitor.Metrics
	if cfg.Monitor.Enabled {
		metrics = monitor.New()
	}
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	return ctx, cancel, cfg, log, metrics, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel, cfg, log, metrics, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	return server.New(cfg.Server, log, metrics).Run(ctx)
}

func runBridge(cmd *cobra.Command, _ []string) error {
	ctx, cancel, cfg, log, metrics, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	if metrics != nil {
		ms := metrics.StartServer(cfg.Monitor.MetricsPort, log)
		defer ms.Close()
	}

	client, err := bridge.Connect(ctx, cfg.MQTT, log)
	if err != nil {
		return err
	}
	defer bridge.Disconnect(client)

	publishers := []bridge.Publisher{bridge.NewMQTTPublisher(client, cfg.MQTT.QoS, cfg.MQTT.ConnectTimeout)}
	if cfg.Redis.Enabled {
		rp := bridge.NewRedisPublisher(cfg.Redis, log)
		if err := rp.Ping(ctx); err != nil {
			return fmt.Errorf("redis fan-out: %w", err)
		}
		defer rp.Close()
		publishers = append(publishers, rp)
	}

	b := bridge.New(cfg.MQTT, log, decoder.New(metrics), dedup.New(cfg.Dedup.TTL, cfg.Dedup.MaxEntries), publishers...)
	return b.Run(ctx, client)
}
