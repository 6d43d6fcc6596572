package observability

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	latencyTotal  map[string]time.Duration
	refreshOK     int64
	refreshFailed int64
	lastRefresh   time.Time
	ticketCount   int
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Requests        map[string]int64 `json:"requests"`
	Errors          map[string]int64 `json:"errors"`
	AvgLatencyMS    map[string]int64 `json:"avg_latency_ms"`
	RefreshOK       int64            `json:"refresh_ok"`
	RefreshFailed   int64            `json:"refresh_failed"`
	LastRefresh     *time.Time       `json:"last_refresh,omitempty"`
	TicketsInSource int              `json:"tickets_in_source"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		latencyTotal: make(map[string]time.Duration),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.latencyTotal[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordRefresh tracks ticket source refresh outcomes.
func (m *Metrics) RecordRefresh(ok bool, tickets int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !ok {
		m.refreshFailed++
		return
	}
	m.refreshOK++
	m.lastRefresh = time.Now().UTC()
	m.ticketCount = tickets
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := MetricsSnapshot{
		Requests:        make(map[string]int64, len(m.requestCount)),
		Errors:          make(map[string]int64, len(m.errorCount)),
		AvgLatencyMS:    make(map[string]int64, len(m.requestCount)),
		RefreshOK:       m.refreshOK,
		RefreshFailed:   m.refreshFailed,
		TicketsInSource: m.ticketCount,
	}
	for k, v := range m.requestCount {
		snap.Requests[k] = v
		if v > 0 {
			snap.AvgLatencyMS[k] = (m.latencyTotal[k] / time.Duration(v)).Milliseconds()
		}
	}
	for k, v := range m.errorCount {
		snap.Errors[k] = v
	}
	if !m.lastRefresh.IsZero() {
		last := m.lastRefresh
		snap.LastRefresh = &last
	}
	return snap
}

// Keys returns the request counter keys in sorted order.
func (s MetricsSnapshot) Keys() []string {
	keys := make([]string, 0, len(s.Requests))
	for k := range s.Requests {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
