package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maintenance-dashboard/internal/config"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/maintenance", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/maintenance", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/maintenance/tickets", "GET", "VALIDATION_FAILED")
	m.RecordRefresh(true, 4)
	m.RecordRefresh(false, 0)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/maintenance|GET|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMS["/maintenance|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/api/maintenance/tickets|GET|VALIDATION_FAILED"])
	assert.Equal(t, int64(1), snap.RefreshOK)
	assert.Equal(t, int64(1), snap.RefreshFailed)
	assert.Equal(t, 4, snap.TicketsInSource)
	require.NotNil(t, snap.LastRefresh)
	assert.Equal(t, []string{"/maintenance|GET|200"}, snap.Keys())
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
		m.RecordRefresh(true, 1)
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "DEBUG"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger(config.LoggerConfig{Level: "bogus"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}
