package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if BooksCreatedTotal == nil {
		t.Error("BooksCreatedTotal未初始化")
	}
	if BookSearchesTotal == nil {
		t.Error("BookSearchesTotal未初始化")
	}

	// 重复初始化不应panic(重复注册会被守卫拦截)
	InitMetrics()
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	initial := getCounterValue(t, BooksCreatedTotal)

	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)

	value := getCounterValue(t, BooksCreatedTotal)
	if value != initial+3 {
		t.Errorf("Counter值错误: expected=%f, got=%f", initial+3, value)
	}
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	IncCounterVec(HTTPRequestsTotal, "GET", "/api/books", "200")
	IncCounterVec(HTTPRequestsTotal, "POST", "/api/books", "201")
	IncCounterVec(HTTPRequestsTotal, "GET", "/api/books", "200")

	value := getCounterVecValue(t, HTTPRequestsTotal, "GET", "/api/books", "200")
	if value != 2 {
		t.Errorf("CounterVec值错误: expected=2, got=%f", value)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()

	initial := getGaugeValue(t, HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != initial+2 {
		t.Errorf("Gauge递增后值错误: expected=%f, got=%f", initial+2, value)
	}

	DecGauge(HTTPRequestsInProgress)
	if value := getGaugeValue(t, HTTPRequestsInProgress); value != initial+1 {
		t.Errorf("Gauge递减后值错误: expected=%f, got=%f", initial+1, value)
	}
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	ObserveHistogramVec(HTTPRequestDuration, 0.05, "GET", "/api/books")
	ObserveHistogramVec(HTTPRequestDuration, 0.1, "GET", "/api/books")
	ObserveHistogramVec(HTTPRequestDuration, 0.5, "GET", "/api/books")

	count := getHistogramVecCount(t, HTTPRequestDuration, "GET", "/api/books")
	if count != 3 {
		t.Errorf("Histogram观测次数错误: expected=3, got=%d", count)
	}
}

// TestNilSafety 辅助函数对nil指标应安全
func TestNilSafety(t *testing.T) {
	// 未初始化时调用不应panic
	IncCounter(nil)
	IncCounterVec(nil, "a")
	IncGauge(nil)
	DecGauge(nil)
	ObserveHistogramVec(nil, 1.0, "a")
}

// =========================================
// 测试辅助函数:读取指标当前值
// =========================================

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labelValues ...string) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := vec.WithLabelValues(labelValues...).Write(m); err != nil {
		t.Fatalf("读取CounterVec失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := gauge.Write(m); err != nil {
		t.Fatalf("读取Gauge失败: %v", err)
	}
	return m.GetGauge().GetValue()
}

func getHistogramVecCount(t *testing.T, vec *prometheus.HistogramVec, labelValues ...string) uint64 {
	t.Helper()
	m := &dto.Metric{}
	observer, err := vec.GetMetricWithLabelValues(labelValues...)
	if err != nil {
		t.Fatalf("获取Histogram失败: %v", err)
	}
	if err := observer.(prometheus.Histogram).Write(m); err != nil {
		t.Fatalf("读取Histogram失败: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}
