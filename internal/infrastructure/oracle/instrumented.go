package oracle

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/inventario-oracle-api/internal/domain"
	"github.com/jhoicas/inventario-oracle-api/internal/domain/repository"
)

var tracer = otel.Tracer("inventario-oracle-repository")

var _ repository.InventoryProcedureRepository = (*InstrumentedRepository)(nil)

// InstrumentedRepository envuelve el repositorio con spans OpenTelemetry y métricas Prometheus.
type InstrumentedRepository struct {
	next     repository.InventoryProcedureRepository
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumentedRepository registra las métricas en reg y devuelve el decorador.
func NewInstrumentedRepository(next repository.InventoryProcedureRepository, reg prometheus.Registerer) *InstrumentedRepository {
	calls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_procedure_calls_total",
			Help: "Total de llamadas a procedimientos PL/SQL de inventario",
		},
		[]string{"procedure", "outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_procedure_duration_seconds",
			Help:    "Duración de las llamadas a procedimientos PL/SQL en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
	reg.MustRegister(calls, duration)

	return &InstrumentedRepository{next: next, calls: calls, duration: duration}
}

func (r *InstrumentedRepository) UpdateInventory(ctx context.Context, prodID, quantity int64, warehouse string) error {
	ctx, span := tracer.Start(ctx, "oracle.sp_update_inventory",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "oracle"),
			attribute.Int64("inventory.product_id", prodID),
			attribute.Int64("inventory.quantity", quantity),
			attribute.String("inventory.warehouse", warehouse),
		),
	)
	defer span.End()

	start := time.Now()
	err := r.next.UpdateInventory(ctx, prodID, quantity, warehouse)
	r.observe("sp_update_inventory", start, err, span)
	return err
}

func (r *InstrumentedRepository) QueryInventory(ctx context.Context, prodID int64) ([]string, error) {
	ctx, span := tracer.Start(ctx, "oracle.fn_get_product_inventory",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "oracle"),
			attribute.Int64("inventory.product_id", prodID),
		),
	)
	defer span.End()

	start := time.Now()
	lines, err := r.next.QueryInventory(ctx, prodID)
	r.observe("fn_get_product_inventory", start, err, span)
	if err == nil {
		span.SetAttributes(attribute.Int("dbms_output.lines", len(lines)))
	}
	return lines, err
}

func (r *InstrumentedRepository) observe(procedure string, start time.Time, err error, span trace.Span) {
	r.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

	if err == nil {
		r.calls.WithLabelValues(procedure, "ok").Inc()
		return
	}
	r.calls.WithLabelValues(procedure, domain.KindOf(err).String()).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if code := OracleErrorCode(err); code != 0 {
		span.SetAttributes(attribute.Int("db.oracle.error_code", code))
	}
}
