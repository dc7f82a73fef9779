// Package config_test tests the configuration loading for the detection-service.
package config_test

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-media-detector/detection-service/internal/config"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tomlData := `
[nats]
url = "nats://127.0.0.1:4222"
detection_stream_name = "DETECTION_JOBS"
detection_consumer_name = "detection-workers"
text_submitted_subject = "text.submitted"
analysis_completed_subject = "analysis.completed"
text_object_store_bucket = "SUBMITTED_TEXTS"
report_object_store_bucket = "ANALYSIS_REPORTS"

[detection]
min_text_length = 50

[http]
host = "0.0.0.0"
port = 8000

[paths]
base_logs_dir = "/var/log/detection-service"
`

	var cfg config.Config

	err := toml.Unmarshal([]byte(tomlData), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "nats://127.0.0.1:4222", cfg.NATS.URL)
	assert.Equal(t, "DETECTION_JOBS", cfg.NATS.DetectionStreamName)
	assert.Equal(t, "detection-workers", cfg.NATS.DetectionConsumerName)
	assert.Equal(t, "text.submitted", cfg.NATS.TextSubmittedSubject)
	assert.Equal(t, "analysis.completed", cfg.NATS.AnalysisCompletedSubject)
	assert.Equal(t, "SUBMITTED_TEXTS", cfg.NATS.TextObjectStoreBucket)
	assert.Equal(t, "ANALYSIS_REPORTS", cfg.NATS.ReportObjectStoreBucket)
	assert.Equal(t, 50, cfg.Detection.MinTextLength)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "/var/log/detection-service", cfg.Paths.BaseLogsDir)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddress())
}
