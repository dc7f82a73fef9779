// Package worker provides a NATS worker that processes text analysis jobs.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/book-expert/logger"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/ai-media-detector/detection-service/internal/core"
	"github.com/ai-media-detector/detection-service/internal/detect"
)

const handleMessageTimeout = 30 * time.Second

// reportKeySuffix is the extension of uploaded report objects.
const reportKeySuffix = ".json"

var (
	// ErrTextKeyEmpty indicates that the submitted event has no text key.
	ErrTextKeyEmpty = errors.New("text key cannot be empty")
	// ErrMinTextLengthNegative indicates a negative per-job length override.
	ErrMinTextLengthNegative = errors.New("min text length must be non-negative")
)

// NatsWorker listens for submitted texts on a NATS subject, analyzes them
// and publishes the outcome.
type NatsWorker struct {
	natsConnection       *nats.Conn
	subject              string
	textStore            core.ObjectStore
	reportStore          core.ObjectStore
	analyzer             core.TextAnalyzer
	defaultMinTextLength int
	log                  *logger.Logger
}

// NewNatsWorker creates a new instance of a NATS worker.
//
// defaultMinTextLength is applied to jobs that do not carry their own
// override; zero selects the analyzer default.
func NewNatsWorker(
	natsConnection *nats.Conn,
	subject string,
	textStore core.ObjectStore,
	reportStore core.ObjectStore,
	analyzer core.TextAnalyzer,
	defaultMinTextLength int,
	log *logger.Logger,
) (*NatsWorker, error) {
	return &NatsWorker{
		natsConnection:       natsConnection,
		subject:              subject,
		textStore:            textStore,
		reportStore:          reportStore,
		analyzer:             analyzer,
		defaultMinTextLength: defaultMinTextLength,
		log:                  log,
	}, nil
}

// Run starts the worker and begins listening for messages.
func (w *NatsWorker) Run(ctx context.Context) error {
	sub, err := w.natsConnection.Subscribe(w.subject, w.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", w.subject, err)
	}

	<-ctx.Done()

	drainErr := sub.Drain()
	if drainErr != nil {
		return fmt.Errorf("failed to drain subscription: %w", drainErr)
	}

	return nil
}

func (w *NatsWorker) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleMessageTimeout)
	defer cancel()

	event, err := w.parseAndValidateEvent(msg)
	if err != nil {
		w.log.Error("Failed to parse and validate event: %v", err)

		return
	}

	replyEvent := w.processAnalysisJob(ctx, event)

	err = w.publishReplyEvent(msg, replyEvent)
	if err != nil {
		w.log.Error("Failed to publish reply event for workflow %s: %v", event.Header.WorkflowID, err)
	}
}

// processAnalysisJob downloads the submitted text, scores it and uploads the
// JSON report. A too-short text is an expected outcome and produces a
// failure reply rather than a dropped message.
func (w *NatsWorker) processAnalysisJob(
	ctx context.Context,
	event *core.TextSubmittedEvent,
) *core.AnalysisCompletedEvent {
	reply := &core.AnalysisCompletedEvent{
		Header:  event.Header,
		TextKey: event.TextKey,
	}

	textData, err := w.textStore.Download(ctx, event.TextKey)
	if err != nil {
		w.log.Error("Failed to download text for key '%s': %v", event.TextKey, err)
		reply.Error = fmt.Sprintf("failed to download text: %v", err)

		return reply
	}

	minTextLength := event.MinTextLength
	if minTextLength == 0 {
		minTextLength = w.defaultMinTextLength
	}

	result, err := w.analyzer.Analyze(string(textData), minTextLength)
	if err != nil {
		if errors.Is(err, detect.ErrTextTooShort) {
			w.log.Warn("Text '%s' below minimum length: %v", event.TextKey, err)
		} else {
			w.log.Error("Failed to analyze text '%s': %v", event.TextKey, err)
		}

		reply.Error = err.Error()

		return reply
	}

	reportKey, err := w.uploadReport(ctx, result)
	if err != nil {
		w.log.Error("Failed to upload report for text '%s': %v", event.TextKey, err)
		reply.Error = err.Error()

		return reply
	}

	reply.Success = true
	reply.ReportKey = reportKey
	reply.AIProbability = result.AIProbability
	reply.Likelihood = result.Likelihood

	return reply
}

// uploadReport stores the full analysis result as JSON and returns its key.
func (w *NatsWorker) uploadReport(ctx context.Context, result *core.Result) (string, error) {
	reportData, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis report: %w", err)
	}

	reportKey := uuid.NewString() + reportKeySuffix

	err = w.reportStore.Upload(ctx, reportKey, reportData)
	if err != nil {
		return "", fmt.Errorf("failed to upload report for key '%s': %w", reportKey, err)
	}

	return reportKey, nil
}

// publishReplyEvent marshals and responds with the AnalysisCompletedEvent.
func (w *NatsWorker) publishReplyEvent(msg *nats.Msg, replyEvent *core.AnalysisCompletedEvent) error {
	replyData, err := json.Marshal(replyEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal reply event: %w", err)
	}

	err = msg.Respond(replyData)
	if err != nil {
		return fmt.Errorf("failed to publish reply event: %w", err)
	}

	return nil
}

func (w *NatsWorker) parseAndValidateEvent(msg *nats.Msg) (*core.TextSubmittedEvent, error) {
	var event core.TextSubmittedEvent

	err := json.Unmarshal(msg.Data, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.TextKey == "" {
		return nil, ErrTextKeyEmpty
	}

	if event.MinTextLength < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrMinTextLengthNegative, event.MinTextLength)
	}

	return &event, nil
}
