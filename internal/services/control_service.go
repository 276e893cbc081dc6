package services

import (
	"context"

	"nistq/internal/models/db_models"
	"nistq/internal/models/response_models"
	"nistq/internal/repositories"
	"nistq/pkg/utils"
)

type ControlServiceInterface interface {
	ListFamilies(ctx context.Context) ([]response_models.ControlFamilyResponse, error)
	GetFamily(ctx context.Context, code string) (*response_models.ControlFamilyResponse, error)
}

type ControlService struct {
	controlRepo repositories.ControlRepositoryInterface
}

func NewControlService(controlRepo repositories.ControlRepositoryInterface) ControlServiceInterface {
	return &ControlService{
		controlRepo: controlRepo,
	}
}

func (c *ControlService) ListFamilies(ctx context.Context) ([]response_models.ControlFamilyResponse, error) {
	families, err := c.controlRepo.ListFamilies(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ControlFamilyResponse, 0, len(families))
	for i := range families {
		out = append(out, buildFamilyResponse(&families[i]))
	}
	return out, nil
}

func (c *ControlService) GetFamily(ctx context.Context, code string) (*response_models.ControlFamilyResponse, error) {
	family, err := c.controlRepo.GetFamilyByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrControlNotFound
	}

	response := buildFamilyResponse(family)
	return &response, nil
}

func buildFamilyResponse(family *db_models.ControlFamily) response_models.ControlFamilyResponse {
	out := response_models.ControlFamilyResponse{
		Code:        family.Code,
		Name:        family.Name,
		Description: family.Description,
	}
	for _, control := range family.Controls {
		out.Controls = append(out.Controls, response_models.ControlResponse{
			Code:        control.Code,
			Name:        control.Name,
			Description: control.Description,
		})
	}
	return out
}
