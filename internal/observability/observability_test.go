package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "toolverse-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.NotNil(t, Tracer)
}

func TestStartService_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := Tracer
	Tracer = tp.Tracer("test")
	t.Cleanup(func() { Tracer = previous })

	span, ctx := StartService(context.Background(), "ToolService", "List")
	assert.NotNil(t, ctx)
	assert.NotEmpty(t, span.TraceID())
	span.SetError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "ToolService.List", ended[0].Name())
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestStoreMetrics_TrackQuery(t *testing.T) {
	m := NewStoreMetrics("memory")
	done := m.TrackQuery("list", "tools")
	done()

	assert.GreaterOrEqual(t, testutil.CollectAndCount(StoreQueryLatency), 1)
}

func TestRecordCatalogQuery(t *testing.T) {
	before := testutil.ToFloat64(CatalogQueries.WithLabelValues("tools", "true"))
	RecordCatalogQuery("tools", true)
	assert.Equal(t, before+1, testutil.ToFloat64(CatalogQueries.WithLabelValues("tools", "true")))
}
