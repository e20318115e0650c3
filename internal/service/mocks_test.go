package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/utafrali/storefront/internal/domain"
)

type mockRepository[T any] struct {
	mock.Mock
}

func (m *mockRepository[T]) GetEntities(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockRepository[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepository[T]) Delete(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

type mockReviewRepository struct {
	mockRepository[domain.Review]
}

func (m *mockReviewRepository) GetByProductID(ctx context.Context, productID int64, limit, offset int) ([]domain.Review, int, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Review), args.Int(1), args.Error(2)
}

type mockMapper[E any, D any] struct {
	mock.Mock
}

func (m *mockMapper[E, D]) ToDTO(entity *E) *D {
	args := m.Called(entity)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*D)
}

func (m *mockMapper[E, D]) ToDTOs(entities []E) []D {
	return m.Called(entities).Get(0).([]D)
}

func (m *mockMapper[E, D]) ToEntity(d *D) *E {
	args := m.Called(d)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*E)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishCreated(ctx context.Context, aggregate string, id int64, data any) error {
	return m.Called(ctx, aggregate, id, data).Error(0)
}

func (m *mockPublisher) PublishUpdated(ctx context.Context, aggregate string, id int64, data any) error {
	return m.Called(ctx, aggregate, id, data).Error(0)
}

func (m *mockPublisher) PublishDeleted(ctx context.Context, aggregate string, id int64) error {
	return m.Called(ctx, aggregate, id).Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
