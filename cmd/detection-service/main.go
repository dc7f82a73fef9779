// main package for the detection-service
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/book-expert/logger"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/ai-media-detector/detection-service/internal/api"
	"github.com/ai-media-detector/detection-service/internal/config"
	"github.com/ai-media-detector/detection-service/internal/detect"
	"github.com/ai-media-detector/detection-service/internal/objectstore"
	"github.com/ai-media-detector/detection-service/internal/worker"
)

func setupLogger(logPath string) (*logger.Logger, error) {
	log, err := logger.New(logPath, "detection-service.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

func run() error {
	// A temporary logger carries the bootstrap until the configured log
	// directory is known.
	bootstrapLog, err := setupLogger(os.TempDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to create bootstrap logger: %v\n", err)

		return err
	}

	cfg, err := config.Load(bootstrapLog)
	if err != nil {
		bootstrapLog.Error("Failed to load configuration: %v", err)

		return fmt.Errorf("failed to load configuration: %w", err)
	}

	finalLog, err := setupLogger(cfg.Paths.BaseLogsDir)
	if err != nil {
		bootstrapLog.Error("Failed to create final logger: %v", err)

		return fmt.Errorf("failed to create final logger: %w", err)
	}

	defer func() {
		closeErr := finalLog.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing final logger: %v\n", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runService(ctx, cfg, finalLog)
}

// runService wires NATS, the object stores, the worker and the HTTP API and
// blocks until shutdown.
func runService(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	natsConnection, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATS.URL, err)
	}
	defer natsConnection.Close()

	jetStream, err := jetstream.New(natsConnection)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	textStore, err := objectstore.New(ctx, jetStream, cfg.NATS.TextObjectStoreBucket)
	if err != nil {
		return fmt.Errorf("failed to create text object store: %w", err)
	}

	reportStore, err := objectstore.New(ctx, jetStream, cfg.NATS.ReportObjectStoreBucket)
	if err != nil {
		return fmt.Errorf("failed to create report object store: %w", err)
	}

	analyzer := detect.New()

	natsWorker, err := worker.NewNatsWorker(
		natsConnection,
		cfg.NATS.TextSubmittedSubject,
		textStore,
		reportStore,
		analyzer,
		cfg.Detection.MinTextLength,
		log,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	apiServer := api.NewServer(cfg.ListenAddress(), analyzer, cfg.Detection.MinTextLength, log)

	log.System(
		"Detection service initialized. Subject: %s, HTTP: %s",
		cfg.NATS.TextSubmittedSubject,
		cfg.ListenAddress(),
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)

	go func() {
		errChan <- natsWorker.Run(runCtx)
	}()

	go func() {
		errChan <- apiServer.Run(runCtx)
	}()

	var firstErr error

	// A failure in either component stops the other.
	for range 2 {
		runErr := <-errChan
		if runErr != nil {
			cancel()

			if firstErr == nil {
				firstErr = runErr
			}
		}
	}

	return firstErr
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service exited with error: %v\n", err)
		os.Exit(1)
	}
}
