package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Span相关测试用进程内的TracerProvider,不依赖外部Collector
// (InitTracer需要可达的OTLP端点,不在单元测试里覆盖)

func setupTestProvider() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp
}

// TestStartSpan 测试Span创建与父子关系
func TestStartSpan(t *testing.T) {
	tp := setupTestProvider()
	defer tp.Shutdown(context.Background())

	ctx, parent := StartSpan(context.Background(), "booktracker", "parent")
	defer parent.End()

	if !parent.SpanContext().IsValid() {
		t.Fatal("父Span上下文无效")
	}

	_, child := StartSpan(ctx, "booktracker", "child")
	defer child.End()

	if child.SpanContext().TraceID() != parent.SpanContext().TraceID() {
		t.Error("子Span应与父Span共享TraceID")
	}
	if child.SpanContext().SpanID() == parent.SpanContext().SpanID() {
		t.Error("子Span应有独立的SpanID")
	}
}

// TestExtractTraceID 测试TraceID提取
func TestExtractTraceID(t *testing.T) {
	tp := setupTestProvider()
	defer tp.Shutdown(context.Background())

	t.Run("有Span时返回TraceID", func(t *testing.T) {
		ctx, span := StartSpan(context.Background(), "booktracker", "op")
		defer span.End()

		traceID := ExtractTraceID(ctx)
		if traceID == "" {
			t.Error("应返回非空TraceID")
		}
		if traceID != span.SpanContext().TraceID().String() {
			t.Error("TraceID与Span不一致")
		}
	})

	t.Run("无Span时返回空串", func(t *testing.T) {
		if traceID := ExtractTraceID(context.Background()); traceID != "" {
			t.Errorf("无Span的Context应返回空串, got=%s", traceID)
		}
	})
}

// TestExtractSpanID 测试SpanID提取
func TestExtractSpanID(t *testing.T) {
	tp := setupTestProvider()
	defer tp.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "booktracker", "op")
	defer span.End()

	if spanID := ExtractSpanID(ctx); spanID == "" {
		t.Error("应返回非空SpanID")
	}

	if spanID := ExtractSpanID(context.Background()); spanID != "" {
		t.Error("无Span的Context应返回空串")
	}
}
