package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/studex/marketplace/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// MemoryUserRepositoryWithTracing wraps MemoryUserRepository with
// tracing.
type MemoryUserRepositoryWithTracing struct {
	*MemoryUserRepository
}

// NewMemoryUserRepositoryWithTracing creates a new repository with
// tracing.
func NewMemoryUserRepositoryWithTracing() *MemoryUserRepositoryWithTracing {
	return &MemoryUserRepositoryWithTracing{
		MemoryUserRepository: NewMemoryUserRepository(),
	}
}

// CreateWithContext records the insert under a span.
func (r *MemoryUserRepositoryWithTracing) CreateWithContext(ctx context.Context, user *domain.User) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("user.id", user.ID),
			attribute.String("user.email", user.Email),
		),
	)
	defer span.End()

	err := r.MemoryUserRepository.Create(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindByEmailWithContext records the lookup under a span.
func (r *MemoryUserRepositoryWithTracing) FindByEmailWithContext(ctx context.Context, email string) (*domain.User, error) {
	_, span := tracer.Start(ctx, "repository.FindByEmail")
	defer span.End()

	user, err := r.MemoryUserRepository.FindByEmail(email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

// FindByIDWithContext records the lookup under a span.
func (r *MemoryUserRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.User, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("user.id", id),
		),
	)
	defer span.End()

	user, err := r.MemoryUserRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// CountWithContext records the count under a span.
func (r *MemoryUserRepositoryWithTracing) CountWithContext(ctx context.Context) (int64, error) {
	_, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.MemoryUserRepository.Count()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
