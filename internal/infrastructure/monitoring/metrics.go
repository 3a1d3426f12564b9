package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Window manager metrics
	WindowsOpen      prometheus.Gauge
	WindowsMinimized prometheus.Gauge
	WindowOps        *prometheus.CounterVec

	// Snapshot metrics
	SnapshotsSaved    prometheus.Counter
	SnapshotsRestored prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "desktop_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		WindowsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "desktop_windows_open",
			Help: "Number of windows currently in the registry",
		}),
		WindowsMinimized: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "desktop_windows_minimized",
			Help: "Number of windows currently minimized",
		}),
		WindowOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_window_operations_total",
				Help: "Window manager operations by type",
			},
			[]string{"op"},
		),

		SnapshotsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "desktop_workspace_snapshots_saved_total",
			Help: "Workspace snapshots saved",
		}),
		SnapshotsRestored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "desktop_workspace_snapshots_restored_total",
			Help: "Workspace snapshots restored",
		}),

		WSConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "desktop_ws_connections",
			Help: "Active WebSocket connections",
		}),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "desktop_ws_messages_total",
				Help: "WebSocket messages by type and direction",
			},
			[]string{"type", "direction"},
		),

		Uptime: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "desktop_uptime_seconds",
			Help: "Process uptime in seconds",
		}),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordWindowOp records a window manager operation
func (m *Metrics) RecordWindowOp(op string) {
	m.WindowOps.WithLabelValues(op).Inc()
}

// SetWindowGauges updates the window population gauges
func (m *Metrics) SetWindowGauges(open, minimized int) {
	m.WindowsOpen.Set(float64(open))
	m.WindowsMinimized.Set(float64(minimized))
}

// RecordSnapshotSave records a workspace snapshot save
func (m *Metrics) RecordSnapshotSave() {
	m.SnapshotsSaved.Inc()
}

// RecordSnapshotRestore records a workspace snapshot restore
func (m *Metrics) RecordSnapshotRestore() {
	m.SnapshotsRestored.Inc()
}

// WSConnect records a new WebSocket connection
func (m *Metrics) WSConnect() {
	m.WSConnections.Inc()
}

// WSDisconnect records a closed WebSocket connection
func (m *Metrics) WSDisconnect() {
	m.WSConnections.Dec()
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(msgType, direction string) {
	m.WSMessages.WithLabelValues(msgType, direction).Inc()
}
