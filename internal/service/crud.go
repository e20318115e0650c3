package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/mapper"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// EventPublisher publishes catalog domain events. event.Producer implements it.
type EventPublisher interface {
	PublishCreated(ctx context.Context, aggregate string, id int64, data any) error
	PublishUpdated(ctx context.Context, aggregate string, id int64, data any) error
	PublishDeleted(ctx context.Context, aggregate string, id int64) error
}

// crudService carries the operations shared by every DTO service: reads are
// mapped to DTOs, writes are mapped to entities first and rejected with the
// resource's processing error when the mapper yields no entity.
type crudService[E domain.Entity, D any] struct {
	resource  string
	repo      repository.Repository[E]
	mapper    mapper.Mapper[E, D]
	publisher EventPublisher
	newErr    func() *apperrors.AppError
	logger    *slog.Logger
}

// GetEntities returns every entity as a DTO. The result is never nil.
func (s *crudService[E, D]) GetEntities(ctx context.Context) ([]D, error) {
	entities, err := s.repo.GetEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s entities: %w", s.resource, err)
	}
	return s.mapper.ToDTOs(entities), nil
}

// GetByID returns the entity with the given ID as a DTO.
func (s *crudService[E, D]) GetByID(ctx context.Context, id int64) (*D, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDTO(entity), nil
}

// Add persists a new entity built from d and returns it as stored.
func (s *crudService[E, D]) Add(ctx context.Context, d *D) (*D, error) {
	entity := s.mapper.ToEntity(d)
	if entity == nil {
		return nil, s.newErr()
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.resource, err)
	}

	id := (*entity).EntityID()
	out := s.mapper.ToDTO(entity)
	if err := s.publisher.PublishCreated(ctx, s.resource, id, out); err != nil {
		s.publishFailed(ctx, "created", id, err)
	}

	s.logger.InfoContext(ctx, s.resource+" created", slog.Int64(s.resource+"_id", id))

	return out, nil
}

// Update replaces the stored entity with one built from d.
func (s *crudService[E, D]) Update(ctx context.Context, d *D) (*D, error) {
	entity := s.mapper.ToEntity(d)
	if entity == nil {
		return nil, s.newErr()
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.resource, err)
	}

	id := (*entity).EntityID()
	out := s.mapper.ToDTO(entity)
	if err := s.publisher.PublishUpdated(ctx, s.resource, id, out); err != nil {
		s.publishFailed(ctx, "updated", id, err)
	}

	s.logger.InfoContext(ctx, s.resource+" updated", slog.Int64(s.resource+"_id", id))

	return out, nil
}

// Delete removes the entity with the given ID. The entity is fetched first,
// so an unknown ID fails before the repository is asked to delete anything.
func (s *crudService[E, D]) Delete(ctx context.Context, id int64) error {
	entity, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, entity); err != nil {
		return fmt.Errorf("delete %s: %w", s.resource, err)
	}

	if err := s.publisher.PublishDeleted(ctx, s.resource, id); err != nil {
		s.publishFailed(ctx, "deleted", id, err)
	}

	s.logger.InfoContext(ctx, s.resource+" deleted", slog.Int64(s.resource+"_id", id))

	return nil
}

func (s *crudService[E, D]) find(ctx context.Context, id int64) (*E, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", s.resource, err)
	}
	if entity == nil {
		return nil, apperrors.NotFound(s.resource, id)
	}
	return entity, nil
}

func (s *crudService[E, D]) publishFailed(ctx context.Context, action string, id int64, err error) {
	s.logger.ErrorContext(ctx, "failed to publish "+s.resource+"."+action+" event",
		slog.Int64(s.resource+"_id", id),
		slog.String("error", err.Error()),
	)
}
