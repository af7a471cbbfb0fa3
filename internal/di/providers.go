package di

import (
	"fmt"
	"net/http"

	"marketcontext/internal/domain/repository"
	internalrepo "marketcontext/internal/repository"
	"marketcontext/internal/service/fmp"
	"marketcontext/internal/usecase"
	"marketcontext/pkg/config"
	pkgkafka "marketcontext/pkg/kafka"
	"marketcontext/pkg/logger"
	"marketcontext/pkg/metrics"
	"marketcontext/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	lcfg := &logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lcfg.Level == "" {
		lcfg.Level = "info"
	}
	if lcfg.Format == "" {
		lcfg.Format = "console"
	}
	if lcfg.Output == "" {
		lcfg.Output = "stdout"
	}
	return logger.New(lcfg)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideFMPClient creates the provider API client.
func ProvideFMPClient(cfg *config.Config) *fmp.Client {
	opts := []fmp.Option{}
	if cfg.FMP.BaseURL != "" {
		opts = append(opts, fmp.WithBaseURL(cfg.FMP.BaseURL))
	}
	if cfg.FMP.Timeout > 0 {
		opts = append(opts, fmp.WithHTTPClient(&http.Client{Timeout: cfg.FMP.Timeout}))
	}
	return fmp.New(cfg.FMP.APIKey, opts...)
}

// ProvideSnapshotBuilder creates the snapshot aggregation usecase.
func ProvideSnapshotBuilder(cfg *config.Config, client *fmp.Client, log *logger.Logger, m repository.Metrics) *usecase.SnapshotBuilder {
	return usecase.NewSnapshotBuilder(client, cfg.FMP.APIKey, log, m)
}

// ProvideSnapshotSink creates the configured snapshot sink, or nil for "none".
func ProvideSnapshotSink(cfg *config.Config) (repository.SnapshotSink, error) {
	switch cfg.Sink.Type {
	case "", "none":
		return nil, nil
	case "redis":
		return internalrepo.NewRedisSink(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.Key,
			cfg.Redis.MaxEntries,
		), nil
	case "kafka":
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
			pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaSink(producer, cfg.Kafka.Topic), nil
	default:
		return nil, fmt.Errorf("unknown sink type: %s", cfg.Sink.Type)
	}
}

// ProvidePoller creates the snapshot poller.
func ProvidePoller(cfg *config.Config, builder *usecase.SnapshotBuilder, sink repository.SnapshotSink, log *logger.Logger) *usecase.Poller {
	return usecase.NewPoller(builder, sink, log, cfg.Poller.Interval)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *logger.Logger, builder *usecase.SnapshotBuilder, poller *usecase.Poller, sink repository.SnapshotSink) *server.App {
	return server.New(cfg, log, builder, poller, sink)
}
