package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/studex/marketplace/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// MemoryCatalogWithTracing wraps MemoryCatalog with tracing.
type MemoryCatalogWithTracing struct {
	*MemoryCatalog
}

// NewMemoryCatalogWithTracing creates a new catalog with tracing.
func NewMemoryCatalogWithTracing() *MemoryCatalogWithTracing {
	return &MemoryCatalogWithTracing{
		MemoryCatalog: NewMemoryCatalog(),
	}
}

// AddItemWithContext records the insert under a span.
func (c *MemoryCatalogWithTracing) AddItemWithContext(ctx context.Context, item domain.Item) error {
	_, span := tracer.Start(ctx, "catalog.AddItem",
		trace.WithAttributes(
			attribute.String("item.id", item.ID()),
			attribute.String("item.category", item.Category()),
		),
	)
	defer span.End()

	err := c.MemoryCatalog.AddItem(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int64("catalog.size", c.Count()))
	return nil
}

// SearchWithContext records the search under a span.
func (c *MemoryCatalogWithTracing) SearchWithContext(ctx context.Context, keyword string) []domain.Item {
	_, span := tracer.Start(ctx, "catalog.Search",
		trace.WithAttributes(
			attribute.String("query.keyword", keyword),
		),
	)
	defer span.End()

	items := c.MemoryCatalog.Search(keyword)
	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items
}

// FilterItemsWithContext records the filter under a span.
func (c *MemoryCatalogWithTracing) FilterItemsWithContext(ctx context.Context, f domain.Filter) ([]domain.Item, error) {
	_, span := tracer.Start(ctx, "catalog.FilterItems")
	defer span.End()

	items, err := c.MemoryCatalog.FilterItems(f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}
