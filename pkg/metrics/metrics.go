// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// - **Counter（计数器）**：只增不减的累计值（请求总数、图书创建总数）
// - **Gauge（仪表盘）**：可增可减的瞬时值（处理中的请求数）
// - **Histogram（直方图）**：观测值的分布（请求耗时的P50/P90/P99）
//
// 使用方式：
//
//	// 1. 启动时初始化
//	metrics.InitMetrics()
//
//	// 2. 通过promhttp暴露/metrics端点（见cmd/api）
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 业务代码记录指标
//	metrics.IncCounter(metrics.BooksCreatedTotal)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/books）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 图书目录业务指标

	// BooksCreatedTotal 图书创建总数（Counter）
	BooksCreatedTotal prometheus.Counter

	// BooksUpdatedTotal 图书更新总数（Counter）
	BooksUpdatedTotal prometheus.Counter

	// BooksDeletedTotal 图书删除总数（Counter）
	BooksDeletedTotal prometheus.Counter

	// BookSearchesTotal 图书检索总数（Counter）
	// 标签：kind（search/genre/author/all）
	BookSearchesTotal *prometheus.CounterVec

	// 缓存指标

	// CacheHitsTotal 缓存命中总数（Counter）
	CacheHitsTotal prometheus.Counter

	// CacheMissesTotal 缓存未命中总数（Counter）
	CacheMissesTotal prometheus.Counter

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：routing_key（book.created / book.updated / book.deleted）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
//
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. Histogram的Buckets按CRUD服务的耗时范围定制
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 图书目录业务指标
	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书创建总数",
		},
	)

	BooksUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_updated_total",
			Help: "图书更新总数",
		},
	)

	BooksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "图书删除总数",
		},
	)

	BookSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_searches_total",
			Help: "图书检索总数",
		},
		[]string{"kind"},
	)

	// 缓存指标
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "book_cache_hits_total",
			Help: "图书详情缓存命中总数",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "book_cache_misses_total",
			Help: "图书详情缓存未命中总数",
		},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "目录事件发布总数",
		},
		[]string{"routing_key"},
	)
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec 递增带标签的Counter,标签值顺序须与注册时一致
func IncCounterVec(counter *prometheus.CounterVec, labelValues ...string) {
	if counter != nil {
		counter.WithLabelValues(labelValues...).Inc()
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}

// ObserveHistogramVec 记录带标签的Histogram观测值,标签值顺序须与注册时一致
func ObserveHistogramVec(histogram *prometheus.HistogramVec, value float64, labelValues ...string) {
	if histogram != nil {
		histogram.WithLabelValues(labelValues...).Observe(value)
	}
}
