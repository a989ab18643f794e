package standards

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/standards")

// Collector walks a source unit by unit and writes results through the
// store. It keeps no state between runs; rerunning with the same
// inputs converges on the same store content.
type Collector struct {
	source Source
	store  Store
}

func NewCollector(source Source, store Store) Collector {
	return Collector{source: source, store: store}
}

// Run attempts every unit the source offers and returns the total
// number of records collected. A unit failing never stops the run; a
// log append failing always does.
func (c Collector) Run(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	units, err := c.source.Units(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to enumerate units")
		return 0, err
	}
	slog.InfoContext(ctx, "starting collection", "units", len(units))

	total := 0
	for _, unit := range units {
		collected, err := c.collectUnit(ctx, unit)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "audit log write failed")
			return total, err
		}
		total += collected
	}

	slog.InfoContext(ctx, "collection complete", "total", total)
	return total, nil
}

// collectUnit returns an error only when the audit log itself cannot
// be written.
func (c Collector) collectUnit(ctx context.Context, unit Unit) (int, error) {
	ctx, span := tracer.Start(ctx, "collectUnit")
	defer span.End()
	span.SetAttributes(
		attribute.String("subject", unit.Subject),
		attribute.String("grade", unit.Grade),
	)

	slog.InfoContext(ctx, "collecting unit", "subject", unit.Subject, "grade", unit.Grade)

	records, err := c.source.Fetch(ctx, unit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unit fetch failed")
		slog.WarnContext(ctx, "unit failed", "subject", unit.Subject, "grade", unit.Grade, "err", err)
		return 0, c.store.AppendLog(ctx, unit, StatusError, 0, err.Error())
	}

	if len(records) == 0 {
		slog.InfoContext(ctx, "no standards found", "subject", unit.Subject, "grade", unit.Grade)
		return 0, c.store.AppendLog(ctx, unit, StatusNoData, 0, "no standards found")
	}

	stored := c.store.UpsertBatch(ctx, records)
	slog.InfoContext(ctx, "unit collected", "subject", unit.Subject, "grade", unit.Grade, "records", stored)
	return stored, c.store.AppendLog(ctx, unit, StatusSuccess, stored, "")
}
