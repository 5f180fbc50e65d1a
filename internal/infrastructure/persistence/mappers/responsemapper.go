package mappers

import (
	"helpdesk/internal/domain/response"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

type ResponseMapper interface {
	ToModel(resp *response.Response) *models.ResponseModel
	ToDomain(model *models.ResponseModel) (*response.Response, error)
}

type ResponseMapperImpl struct{}

func NewResponseMapper() ResponseMapper {
	return &ResponseMapperImpl{}
}

func (m *ResponseMapperImpl) ToModel(resp *response.Response) *models.ResponseModel {
	return &models.ResponseModel{
		ID:        resp.ID(),
		RequestID: resp.RequestID(),
		UserID:    resp.UserID(),
		Text:      resp.Text(),
		CreatedAt: resp.CreatedAt().UnixMilli(),
		UpdatedAt: resp.UpdatedAt().UnixMilli(),
	}
}

func (m *ResponseMapperImpl) ToDomain(model *models.ResponseModel) (*response.Response, error) {
	return response.ReconstructResponse(
		model.ID,
		model.RequestID,
		model.UserID,
		model.Text,
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
	)
}
