// Package api_test tests the detection HTTP API.
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/book-expert/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-media-detector/detection-service/internal/api"
	"github.com/ai-media-detector/detection-service/internal/core"
	"github.com/ai-media-detector/detection-service/internal/detect"
)

const aiText = "As an AI language model, I don't have personal opinions. " +
	"However, it's important to note that furthermore, moreover, " +
	"this topic is comprehensive."

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	testLogger, err := logger.New(t.TempDir(), "api-test.log")
	require.NoError(t, err)

	server := api.NewServer("127.0.0.1:0", detect.New(), 0, testLogger)

	testServer := httptest.NewServer(server.Handler())
	t.Cleanup(testServer.Close)

	return testServer
}

func postDetect(t *testing.T, testServer *httptest.Server, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	response, err := testServer.Client().Post(
		testServer.URL+"/api/ai-detection/detect",
		"application/json",
		bytes.NewReader(body),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })

	return response
}

func TestDetectEndpoint_Success(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	response := postDetect(t, testServer, api.DetectRequest{Text: aiText, MinLength: 0})
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/json", response.Header.Get("Content-Type"))

	var result core.Result

	err := json.NewDecoder(response.Body).Decode(&result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, core.LikelihoodHigh, result.Likelihood)
	assert.Greater(t, result.Metrics.PatternScore, 50.0)
	assert.NotEmpty(t, result.Indicators)
	assert.Positive(t, result.Statistics.WordCount)
}

func TestDetectEndpoint_TooShort(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	response := postDetect(t, testServer, api.DetectRequest{Text: "Hi there!", MinLength: 0})
	require.Equal(t, http.StatusBadRequest, response.StatusCode)

	var errorResponse api.ErrorResponse

	err := json.NewDecoder(response.Body).Decode(&errorResponse)
	require.NoError(t, err)

	assert.False(t, errorResponse.Success)
	assert.Contains(t, errorResponse.Error, "too short")
}

func TestDetectEndpoint_MinLengthOverride(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	response := postDetect(t, testServer, api.DetectRequest{Text: "Twenty characters!!!", MinLength: 10})
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestDetectEndpoint_InvalidBody(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	response, err := testServer.Client().Post(
		testServer.URL+"/api/ai-detection/detect",
		"application/json",
		bytes.NewReader([]byte("not json")),
	)
	require.NoError(t, err)

	defer func() { _ = response.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestDetectEndpoint_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	response, err := testServer.Client().Get(testServer.URL + "/api/ai-detection/detect")
	require.NoError(t, err)

	defer func() { _ = response.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, response.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	response, err := testServer.Client().Get(testServer.URL + "/api/health")
	require.NoError(t, err)

	defer func() { _ = response.Body.Close() }()

	require.Equal(t, http.StatusOK, response.StatusCode)

	var health api.HealthResponse

	err = json.NewDecoder(response.Body).Decode(&health)
	require.NoError(t, err)

	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
}
