package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/request"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

// allowedRequestOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection.
var allowedRequestOrderByFields = map[string]bool{
	"id":         true,
	"number":     true,
	"user_id":    true,
	"priority":   true,
	"status":     true,
	"created_at": true,
	"updated_at": true,
}

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

// Save persists a new request, assigning its ID and the next sequential
// request number.
func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var maxNumber uint
	if err := tx.Model(&models.RequestModel{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&maxNumber).Error; err != nil {
		return fmt.Errorf("failed to allocate request number: %w", err)
	}

	if err := req.SetNumber(maxNumber + 1); err != nil {
		return err
	}

	model := r.mapper.ToModel(req)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(req)

	result := tx.
		Model(&models.RequestModel{}).
		Where("id = ?", model.ID).
		Select("description", "priority", "status", "extras", "version", "updated_at", "closed_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}

	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.RequestModel{}, requestID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("request", requestID)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.RequestModel
	if err := tx.First(&model, requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request", requestID)
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) GetByNumber(ctx context.Context, number uint) (*request.Request, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.RequestModel
	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request", number)
		}
		return nil, fmt.Errorf("failed to find request by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.RequestModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.OwnerID != nil {
		query = query.Where("user_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	query = query.Order(requestOrderClause(filter.SortBy, filter.SortOrder))

	var modelList []models.RequestModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]*request.Request, 0, len(modelList))
	for i := range modelList {
		req, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

func requestOrderClause(sortBy, sortOrder string) string {
	field := "created_at"
	if allowedRequestOrderByFields[sortBy] {
		field = sortBy
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	return fmt.Sprintf("%s %s", field, order)
}
