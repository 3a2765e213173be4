// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	awsclient "document-workers/internal/common/aws"
	"document-workers/internal/common/camunda"
	"document-workers/internal/common/config"
	"document-workers/internal/common/database"
	apperrors "document-workers/internal/common/errors"
	"document-workers/internal/common/logger"
	"document-workers/internal/common/observability"
	"document-workers/internal/document/assembler"
	"document-workers/internal/document/builders"
	"document-workers/internal/document/diagnostics"
	"document-workers/internal/document/dispatch"
	"document-workers/internal/document/tabs"
	"document-workers/internal/document/templates"
	gdf "document-workers/internal/workers/document/generate-document-fields"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format).With(
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.Documents.Environment),
	)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...", zap.String("version", cfg.App.Version))

	obs := observability.New(observability.Options{
		ServiceName: cfg.App.Name,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, log)
	defer obs.Shutdown(context.Background())

	ctx := context.Background()

	// --- Template catalog ---
	descriptors := tabs.NewRegistry()
	builderRegistry := builders.NewRegistry()
	if err := templates.Load(descriptors, builderRegistry); err != nil {
		zapLog.Fatal("template catalog invalid", zap.Error(apperrors.NewTemplateConfigurationError(err)))
	}
	logCatalog(zapLog, descriptors, builderRegistry)

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: cfg.Camunda.Plaintext,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	var store assembler.Store = assembler.NewPostgresStore(pg.DB)

	// --- Init Redis record cache ---
	if cfg.Documents.RecordCacheTTL > 0 {
		redis := database.NewRedis(cfg.Database.Redis)
		err = retryWithBackoff(func() error {
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		store = assembler.NewCachedStore(store, redis.Client, config.GetDuration(cfg.Documents.RecordCacheTTL), log)
		zapLog.Info("Redis record cache enabled", zap.Int("ttlMs", cfg.Documents.RecordCacheTTL))
	}

	// --- Init Elasticsearch utility usage index ---
	var usage assembler.UsageSource
	if len(cfg.Database.Elasticsearch.Addresses) > 0 {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch, nil)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return esClient.Ping(pingCtx)
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		usage = assembler.NewUsageIndex(esClient.Client, cfg.Documents.UtilityUsageIndex)
		zapLog.Info("Elasticsearch connected successfully", zap.String("index", cfg.Documents.UtilityUsageIndex))
	} else {
		zapLog.Warn("No Elasticsearch addresses configured, utility usage details disabled")
	}

	// --- Init diagnostics publisher ---
	var publisher diagnostics.Publisher
	if cfg.Integrations.AWS.SNS.Enabled {
		snsClient, err := awsclient.NewSNSClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		publisher = diagnostics.NewSNSPublisher(snsClient, cfg.Documents.DiagnosticsTopic, log)
		zapLog.Info("Fallback diagnostics enabled", zap.String("topic", cfg.Documents.DiagnosticsTopic))
	}

	// --- Register workers ---
	handler, err := gdf.NewHandler(gdf.HandlerOptions{
		AppConfig:     cfg,
		Logger:        log,
		Assembler:     assembler.New(store, usage, log),
		Mapper:        dispatch.New(descriptors, builderRegistry, log),
		Publisher:     publisher,
		Observability: obs,
	})
	if err != nil {
		zapLog.Fatal("worker configuration invalid", zap.Error(err))
	}

	var workers []*camunda.Worker
	if handler.IsEnabled() {
		workers = append(workers, camunda.StartWorker(zeebe.GetClient(), handler.WorkerOptions(), handler.Handle, log))
	} else {
		zapLog.Info("worker disabled", zap.String("taskType", handler.GetTaskType()))
	}

	// --- Health & Metrics Server ---
	mux := http.DefaultServeMux
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := zeebe.HealthCheck(r.Context()); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready", "error": err.Error()})
			return
		}
		writeStatus(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped")
}

func logCatalog(log *zap.Logger, descriptors *tabs.Registry, builderRegistry *builders.Registry) {
	keys := descriptors.Keys()
	declarative := make([]string, len(keys))
	for i, k := range keys {
		declarative[i] = k.String()
	}

	log.Info("Template catalog loaded",
		zap.Int("declarative", len(declarative)),
		zap.Strings("declarativeKeys", declarative),
		zap.Strings("imperativeTemplateIds", builderRegistry.TemplateIDs()),
	)
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
