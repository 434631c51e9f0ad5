package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ShaderRequests counts requests that named a shader, partitioned by
	// result: rendered, missing or failed
	ShaderRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shader_preview_shader_requests_total",
		Help: "The number of requests that named a shader, by result",
	}, []string{"result"})

	// TemplateRenderDuration records the time it takes to load and rewrite the template
	TemplateRenderDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "shader_preview_template_render_seconds",
		Help: "The time (in seconds) it takes to load and rewrite the shader template",
	})

	// StaticServingFileSize is the size of files served by static serving
	StaticServingFileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shader_preview_static_serving_file_size_bytes",
		Help:    "The size in bytes for each file that has been served",
		Buckets: prometheus.ExponentialBuckets(1.0, 10.0, 8),
	})

	// DirectoryListings counts generated directory listings
	DirectoryListings = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shader_preview_directory_listings_total",
		Help: "The number of directory listings generated",
	})

	// LimitListenerMaxConns is the maximum number of connections served at once
	LimitListenerMaxConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shader_preview_limit_listener_max_conns",
		Help: "The maximum number of connections allowed to be served at once",
	})

	// LimitListenerConcurrentConns is the number of connections being served
	LimitListenerConcurrentConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shader_preview_limit_listener_concurrent_conns",
		Help: "The number of connections being served",
	})

	// LimitListenerWaitingConns is the number of connections waiting for a free slot
	LimitListenerWaitingConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shader_preview_limit_listener_waiting_conns",
		Help: "The number of connections waiting to be served",
	})

	// VFSOperations counts filesystem calls by operation and success
	VFSOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shader_preview_vfs_operations_total",
		Help: "The number of VFS operations done",
	}, []string{"vfs_name", "operation", "success"})
)

// MustRegister collectors with the Prometheus client
func MustRegister() {
	prometheus.MustRegister(
		ShaderRequests,
		TemplateRenderDuration,
		StaticServingFileSize,
		DirectoryListings,
		LimitListenerMaxConns,
		LimitListenerConcurrentConns,
		LimitListenerWaitingConns,
		VFSOperations,
	)
}
