package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type MaterialUseCase struct {
	materials outbound.MaterialRepository
	logger    logger.Logger
	opts      Options
}

func NewMaterialUseCase(materials outbound.MaterialRepository, log logger.Logger, opts Options) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, logger: log, opts: opts.withDefaults()}
}

var _ inbound.MaterialUseCase = (*MaterialUseCase)(nil)

func (uc *MaterialUseCase) List(ctx context.Context) ([]*entity.Material, error) {
	materials, err := uc.materials.FindAll(ctx)
	return materials, mapRepoError("material", "", "list materials", err)
}

func (uc *MaterialUseCase) Get(ctx context.Context, id string) (*entity.Material, error) {
	material, err := uc.materials.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("material", id, "get material", err)
	}
	return material, nil
}

func (uc *MaterialUseCase) Create(ctx context.Context, actor outbound.TokenClaims, in inbound.MaterialInput) (*entity.Material, error) {
	if err := requireFields(
		field{"name", in.Name},
		field{"stock", presence(in.Stock != nil)},
		field{"unidad", in.Unit},
		field{"precio", presence(in.Price != nil)},
	); err != nil {
		return nil, err
	}

	material := &entity.Material{
		ID:   uc.opts.NewID(),
		Name: in.Name,
		Unit: in.Unit,
	}
	if err := uc.apply(material, in); err != nil {
		return nil, err
	}
	material.CreatedAt = uc.opts.Now()
	material.UpdatedAt = material.CreatedAt

	if err := uc.materials.Create(ctx, material); err != nil {
		return nil, mapRepoError("material", material.ID, "create material", err)
	}

	uc.logger.Info(ctx, "Material created", map[string]interface{}{"material_id": material.ID, "user_id": actor.UserID})
	return material, nil
}

func (uc *MaterialUseCase) Update(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.MaterialInput) (*entity.Material, error) {
	material, err := uc.materials.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("material", id, "get material", err)
	}

	if in.Name != "" {
		material.Name = in.Name
	}
	if in.Unit != "" {
		material.Unit = in.Unit
	}
	if err := uc.apply(material, in); err != nil {
		return nil, err
	}
	material.UpdatedAt = uc.opts.Now()

	if err := uc.materials.Update(ctx, material); err != nil {
		return nil, mapRepoError("material", id, "update material", err)
	}

	uc.logger.Info(ctx, "Material updated", map[string]interface{}{"material_id": id, "user_id": actor.UserID})
	return material, nil
}

func (uc *MaterialUseCase) Delete(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.materials.Delete(ctx, id); err != nil {
		return mapRepoError("material", id, "delete material", err)
	}
	uc.logger.Info(ctx, "Material deleted", map[string]interface{}{"material_id": id, "user_id": actor.UserID})
	return nil
}

func (uc *MaterialUseCase) apply(material *entity.Material, in inbound.MaterialInput) error {
	if err := checkMinInt("stock", in.Stock, 0); err != nil {
		return err
	}
	if err := checkMinFloat("precio", in.Price, 0); err != nil {
		return err
	}
	if in.Stock != nil {
		material.Stock = *in.Stock
	}
	if in.Price != nil {
		material.Price = *in.Price
	}
	if v := nonEmpty(in.Description); v != nil {
		material.Description = v
	}
	return nil
}

func (uc *MaterialUseCase) ListRequests(ctx context.Context) ([]*entity.MaterialRequest, error) {
	requests, err := uc.materials.FindAllRequests(ctx)
	return requests, mapRepoError("material request", "", "list material requests", err)
}

func (uc *MaterialUseCase) CreateRequest(ctx context.Context, actor outbound.TokenClaims, in inbound.MaterialRequestInput) (*entity.MaterialRequest, error) {
	if err := requireFields(
		field{"materialId", in.MaterialID},
		field{"projectId", in.ProjectID},
		field{"crewId", in.CrewID},
		field{"cantidad", presence(in.Quantity != nil)},
	); err != nil {
		return nil, err
	}
	if err := checkMinInt("cantidad", in.Quantity, 1); err != nil {
		return nil, err
	}
	status := entity.RequestStatusPending
	if in.Status != "" {
		if !entity.IsValidRequestStatus(in.Status) {
			return nil, domainerr.ErrInvalidValue("estado", in.Status)
		}
		status = in.Status
	}

	now := uc.opts.Now()
	request := &entity.MaterialRequest{
		ID:         uc.opts.NewID(),
		MaterialID: in.MaterialID,
		ProjectID:  in.ProjectID,
		CrewID:     in.CrewID,
		Quantity:   *in.Quantity,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.materials.CreateRequest(ctx, request); err != nil {
		return nil, mapRepoError("material request", request.ID, "create material request", err)
	}

	uc.logger.Info(ctx, "Material request created", map[string]interface{}{
		"request_id":  request.ID,
		"material_id": request.MaterialID,
		"quantity":    request.Quantity,
		"user_id":     actor.UserID,
	})
	return request, nil
}

// UpdateRequest changes the quantity or status of a material request.
func (uc *MaterialUseCase) UpdateRequest(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.MaterialRequestInput) (*entity.MaterialRequest, error) {
	if err := checkMinInt("cantidad", in.Quantity, 1); err != nil {
		return nil, err
	}
	if in.Status != "" && !entity.IsValidRequestStatus(in.Status) {
		return nil, domainerr.ErrInvalidValue("estado", in.Status)
	}

	request, err := uc.materials.FindRequestByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("material request", id, "get material request", err)
	}
	if in.Quantity != nil {
		request.Quantity = *in.Quantity
	}
	if in.Status != "" {
		request.Status = in.Status
	}
	request.UpdatedAt = uc.opts.Now()

	if err := uc.materials.UpdateRequest(ctx, request); err != nil {
		return nil, mapRepoError("material request", id, "update material request", err)
	}

	uc.logger.Info(ctx, "Material request updated", map[string]interface{}{"request_id": id, "estado": request.Status, "user_id": actor.UserID})
	return request, nil
}

func (uc *MaterialUseCase) DeleteRequest(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.materials.DeleteRequest(ctx, id); err != nil {
		return mapRepoError("material request", id, "delete material request", err)
	}
	uc.logger.Info(ctx, "Material request deleted", map[string]interface{}{"request_id": id, "user_id": actor.UserID})
	return nil
}
