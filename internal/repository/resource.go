package repository

import (
	"context"
	"errors"

	"github.com/openshelf/reserve/api/internal/database"
	"github.com/openshelf/reserve/api/internal/model"
)

// ResourceRepository handles resource catalog data access
type ResourceRepository struct {
	db database.Database
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db database.Database) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// GetByID retrieves a resource by its record ID
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{
		"id": id,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseResourceResult(result)
}

// List retrieves every resource in the catalog ordered by title
func (r *ResourceRepository) List(ctx context.Context) ([]*model.Resource, error) {
	query := `SELECT * FROM resource ORDER BY title ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	resources := make([]*model.Resource, 0)
	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					parsed, err := parseResourceResult(item)
					if err != nil {
						continue
					}
					resources = append(resources, parsed)
				}
			}
		}
	}

	return resources, nil
}

func parseResourceResult(result interface{}) (*model.Resource, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	res := &model.Resource{
		ID:           convertSurrealID(data["id"]),
		Title:        getString(data, "title"),
		Author:       getStringPtr(data, "author"),
		Keywords:     getStringPtr(data, "keywords"),
		ResourceType: model.ResourceType(getString(data, "resource_type")),
	}

	if createdOn := getTime(data, "created_on"); createdOn != nil {
		res.CreatedOn = *createdOn
	}
	if updatedOn := getTime(data, "updated_on"); updatedOn != nil {
		res.UpdatedOn = *updatedOn
	}

	return res, nil
}
