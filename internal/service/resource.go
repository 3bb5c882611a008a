package service

import (
	"context"
	"errors"

	"github.com/openshelf/reserve/api/internal/database"
	"github.com/openshelf/reserve/api/internal/model"
)

// ResourceRepository defines the persistence operations needed by the
// resource service.
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context) ([]*model.Resource, error)
}

// ResourceService exposes read access to the reservable catalog.
type ResourceService struct {
	repo ResourceRepository
}

// ResourceServiceConfig holds dependencies for ResourceService.
type ResourceServiceConfig struct {
	Repo ResourceRepository
}

// NewResourceService creates a new resource service.
func NewResourceService(cfg ResourceServiceConfig) *ResourceService {
	return &ResourceService{repo: cfg.Repo}
}

// GetByID retrieves a single resource.
func (s *ResourceService) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, &StoreError{Op: "get resource", Err: err}
	}
	if res == nil {
		return nil, ErrResourceNotFound
	}
	return res, nil
}

// List returns every resource in the catalog.
func (s *ResourceService) List(ctx context.Context) ([]*model.Resource, error) {
	resources, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list resources", Err: err}
	}
	return resources, nil
}
