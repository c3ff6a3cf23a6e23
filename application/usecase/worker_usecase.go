package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/domain/valueobject"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type WorkerUseCase struct {
	workers outbound.WorkerRepository
	logger  logger.Logger
	opts    Options
}

func NewWorkerUseCase(workers outbound.WorkerRepository, log logger.Logger, opts Options) *WorkerUseCase {
	return &WorkerUseCase{workers: workers, logger: log, opts: opts.withDefaults()}
}

var _ inbound.WorkerUseCase = (*WorkerUseCase)(nil)

func (uc *WorkerUseCase) List(ctx context.Context) ([]*entity.Worker, error) {
	workers, err := uc.workers.FindAll(ctx)
	return workers, mapRepoError("worker", "", "list workers", err)
}

func (uc *WorkerUseCase) Get(ctx context.Context, id string) (*entity.Worker, error) {
	worker, err := uc.workers.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("worker", id, "get worker", err)
	}
	return worker, nil
}

func (uc *WorkerUseCase) Create(ctx context.Context, actor outbound.TokenClaims, in inbound.WorkerInput) (*entity.Worker, error) {
	if err := requireFields(field{"name", in.Name}, field{"especialidad", in.Specialty}); err != nil {
		return nil, err
	}

	worker := &entity.Worker{
		ID:        uc.opts.NewID(),
		Name:      in.Name,
		Specialty: in.Specialty,
		Available: true,
		Status:    entity.WorkerStatusActive,
	}
	if err := uc.apply(worker, in); err != nil {
		return nil, err
	}
	worker.CreatedAt = uc.opts.Now()
	worker.UpdatedAt = worker.CreatedAt

	if err := uc.workers.Create(ctx, worker); err != nil {
		return nil, mapRepoError("worker", worker.ID, "create worker", err)
	}

	uc.logger.Info(ctx, "Worker created", map[string]interface{}{"worker_id": worker.ID, "user_id": actor.UserID})
	return worker, nil
}

func (uc *WorkerUseCase) Update(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.WorkerInput) (*entity.Worker, error) {
	worker, err := uc.workers.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("worker", id, "get worker", err)
	}

	if in.Name != "" {
		worker.Name = in.Name
	}
	if in.Specialty != "" {
		worker.Specialty = in.Specialty
	}
	if err := uc.apply(worker, in); err != nil {
		return nil, err
	}
	worker.UpdatedAt = uc.opts.Now()

	if err := uc.workers.Update(ctx, worker); err != nil {
		return nil, mapRepoError("worker", id, "update worker", err)
	}

	uc.logger.Info(ctx, "Worker updated", map[string]interface{}{"worker_id": id, "user_id": actor.UserID})
	return worker, nil
}

func (uc *WorkerUseCase) Delete(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.workers.Delete(ctx, id); err != nil {
		return mapRepoError("worker", id, "delete worker", err)
	}
	uc.logger.Info(ctx, "Worker deleted", map[string]interface{}{"worker_id": id, "user_id": actor.UserID})
	return nil
}

func (uc *WorkerUseCase) apply(worker *entity.Worker, in inbound.WorkerInput) error {
	if in.Experience != nil && (*in.Experience < 0 || *in.Experience > entity.MaxWorkerExperienceYears) {
		return domainerr.ErrOutOfRange("experiencia", 0, entity.MaxWorkerExperienceYears)
	}
	if err := checkBanned(uc.opts.BannedWords,
		field{"name", in.Name},
		field{"certificaciones", in.Certifications},
	); err != nil {
		return err
	}

	if rut := nonEmpty(in.RUT); rut != nil {
		normalized, ok := valueobject.NormalizeRUT(*rut)
		if !ok {
			return domainerr.ErrInvalidRUT(*rut)
		}
		worker.RUT = &normalized
	}
	if in.Certifications != "" {
		worker.Certifications = in.Certifications
	}
	if in.Experience != nil {
		worker.Experience = *in.Experience
	}
	if in.Available != nil {
		worker.Available = *in.Available
	}
	if in.Status != "" {
		worker.Status = in.Status
	}
	return nil
}
