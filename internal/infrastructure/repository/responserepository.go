package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/response"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type ResponseRepository struct {
	db     *gorm.DB
	mapper mappers.ResponseMapper
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:     db,
		mapper: mappers.NewResponseMapper(),
	}
}

func (r *ResponseRepository) Save(ctx context.Context, resp *response.Response) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(resp)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return resp.SetID(model.ID)
}

func (r *ResponseRepository) Update(ctx context.Context, resp *response.Response) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(resp)

	result := tx.
		Model(&models.ResponseModel{}).
		Where("id = ?", model.ID).
		Select("text", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update response: %w", result.Error)
	}

	return nil
}

func (r *ResponseRepository) Delete(ctx context.Context, responseID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ResponseModel{}, responseID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete response: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("response", responseID)
	}

	return nil
}

// DeleteByRequestID removes all responses attached to a request. Deleting
// zero rows is fine; a ticket may have no responses yet.
func (r *ResponseRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("request_id = ?", requestID).
		Delete(&models.ResponseModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete responses for request %d: %w", requestID, err)
	}

	return nil
}

func (r *ResponseRepository) GetByID(ctx context.Context, responseID uint) (*response.Response, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ResponseModel
	if err := tx.First(&model, responseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("response", responseID)
		}
		return nil, fmt.Errorf("failed to find response: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ResponseRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*response.Response, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ResponseModel
	if err := tx.Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list responses for request %d: %w", requestID, err)
	}

	return r.toDomainList(modelList)
}

func (r *ResponseRepository) List(ctx context.Context) ([]*response.Response, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ResponseModel
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *ResponseRepository) toDomainList(modelList []models.ResponseModel) ([]*response.Response, error) {
	responses := make([]*response.Response, 0, len(modelList))
	for i := range modelList {
		resp, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
