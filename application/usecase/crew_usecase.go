package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type CrewUseCase struct {
	crews  outbound.CrewRepository
	logger logger.Logger
	opts   Options
}

func NewCrewUseCase(crews outbound.CrewRepository, log logger.Logger, opts Options) *CrewUseCase {
	return &CrewUseCase{crews: crews, logger: log, opts: opts.withDefaults()}
}

var _ inbound.CrewUseCase = (*CrewUseCase)(nil)

func (uc *CrewUseCase) List(ctx context.Context) ([]*entity.Crew, error) {
	crews, err := uc.crews.FindAll(ctx)
	return crews, mapRepoError("crew", "", "list crews", err)
}

func (uc *CrewUseCase) Get(ctx context.Context, id string) (*entity.Crew, error) {
	crew, err := uc.crews.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("crew", id, "get crew", err)
	}
	return crew, nil
}

func (uc *CrewUseCase) Create(ctx context.Context, actor outbound.TokenClaims, in inbound.CrewInput) (*entity.Crew, error) {
	if err := requireFields(field{"name", in.Name}, field{"estado", in.Status}); err != nil {
		return nil, err
	}

	now := uc.opts.Now()
	crew := &entity.Crew{
		ID:        uc.opts.NewID(),
		Name:      in.Name,
		StartDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.apply(crew, in); err != nil {
		return nil, err
	}

	if err := uc.crews.Create(ctx, crew); err != nil {
		return nil, mapRepoError("crew", crew.ID, "create crew", err)
	}

	uc.logger.Info(ctx, "Crew created", map[string]interface{}{"crew_id": crew.ID, "user_id": actor.UserID})
	return crew, nil
}

func (uc *CrewUseCase) Update(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.CrewInput) (*entity.Crew, error) {
	crew, err := uc.crews.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("crew", id, "get crew", err)
	}

	if in.Name != "" {
		crew.Name = in.Name
	}
	if err := uc.apply(crew, in); err != nil {
		return nil, err
	}
	crew.UpdatedAt = uc.opts.Now()

	if err := uc.crews.Update(ctx, crew); err != nil {
		return nil, mapRepoError("crew", id, "update crew", err)
	}

	uc.logger.Info(ctx, "Crew updated", map[string]interface{}{"crew_id": id, "user_id": actor.UserID})
	return crew, nil
}

// Delete removes the crew together with its worker assignments.
func (uc *CrewUseCase) Delete(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.crews.Delete(ctx, id); err != nil {
		return mapRepoError("crew", id, "delete crew", err)
	}
	uc.logger.Info(ctx, "Crew deleted", map[string]interface{}{"crew_id": id, "user_id": actor.UserID})
	return nil
}

func (uc *CrewUseCase) AddWorker(ctx context.Context, actor outbound.TokenClaims, crewID string, in inbound.CrewMemberInput) (*entity.CrewWorker, error) {
	if err := requireFields(
		field{"crewId", crewID},
		field{"workerId", in.WorkerID},
		field{"role", in.Role},
	); err != nil {
		return nil, err
	}

	link := &entity.CrewWorker{
		ID:         uc.opts.NewID(),
		CrewID:     crewID,
		WorkerID:   in.WorkerID,
		Role:       in.Role,
		AssignedAt: uc.opts.Now(),
	}
	if err := uc.crews.AddWorker(ctx, link); err != nil {
		return nil, mapRepoError("crew worker", link.ID, "add crew worker", err)
	}

	uc.logger.Info(ctx, "Worker assigned to crew", map[string]interface{}{
		"crew_id":   crewID,
		"worker_id": in.WorkerID,
		"user_id":   actor.UserID,
	})
	return link, nil
}

func (uc *CrewUseCase) RemoveWorker(ctx context.Context, actor outbound.TokenClaims, crewWorkerID string) error {
	if err := uc.crews.RemoveWorker(ctx, crewWorkerID); err != nil {
		return mapRepoError("crew worker", crewWorkerID, "remove crew worker", err)
	}
	uc.logger.Info(ctx, "Worker removed from crew", map[string]interface{}{"crew_worker_id": crewWorkerID, "user_id": actor.UserID})
	return nil
}

func (uc *CrewUseCase) apply(crew *entity.Crew, in inbound.CrewInput) error {
	if in.Status != "" && !entity.IsValidCrewStatus(in.Status) {
		return domainerr.ErrInvalidValue("estado", in.Status)
	}
	if err := checkBanned(uc.opts.BannedWords, field{"name", in.Name}); err != nil {
		return err
	}
	start, err := parseOptionalDate("fecha_inicio", in.StartDate)
	if err != nil {
		return err
	}

	if start != nil {
		crew.StartDate = *start
	}
	if v := nonEmpty(in.ProjectID); v != nil {
		crew.ProjectID = v
	}
	if in.Status != "" {
		crew.Status = in.Status
	}
	return nil
}
