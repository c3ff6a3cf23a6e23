package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type SiteLogUseCase struct {
	logs   outbound.SiteLogRepository
	logger logger.Logger
	opts   Options
}

func NewSiteLogUseCase(logs outbound.SiteLogRepository, log logger.Logger, opts Options) *SiteLogUseCase {
	return &SiteLogUseCase{logs: logs, logger: log, opts: opts.withDefaults()}
}

var _ inbound.SiteLogUseCase = (*SiteLogUseCase)(nil)

func (uc *SiteLogUseCase) List(ctx context.Context, filter outbound.SiteLogFilter) ([]*entity.SiteLog, error) {
	logs, err := uc.logs.FindAll(ctx, filter)
	return logs, mapRepoError("log", "", "list logs", err)
}

func (uc *SiteLogUseCase) Get(ctx context.Context, id string) (*entity.SiteLog, error) {
	entry, err := uc.logs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("log", id, "get log", err)
	}
	return entry, nil
}

// Create records a daily log. The acting user becomes its responsible.
func (uc *SiteLogUseCase) Create(ctx context.Context, actor outbound.TokenClaims, in inbound.SiteLogInput) (*entity.SiteLog, error) {
	if err := requireFields(
		field{"crewId", in.CrewID},
		field{"projectId", in.ProjectID},
		field{"fecha", in.Date},
	); err != nil {
		return nil, err
	}
	if err := uc.checkContent(in); err != nil {
		return nil, err
	}
	date, err := parseDate("fecha", in.Date)
	if err != nil {
		return nil, err
	}

	now := uc.opts.Now()
	entry := &entity.SiteLog{
		ID:            uc.opts.NewID(),
		CrewID:        in.CrewID,
		ProjectID:     in.ProjectID,
		Date:          date,
		Activities:    in.Activities,
		Incidents:     in.Incidents,
		Materials:     in.Materials,
		WorkTimes:     in.WorkTimes,
		Observations:  in.Observations,
		ToolCondition: in.ToolCondition,
		ResponsibleID: actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.logs.Create(ctx, entry); err != nil {
		return nil, mapRepoError("log", entry.ID, "create log", err)
	}

	uc.logger.Info(ctx, "Site log created", map[string]interface{}{
		"log_id":     entry.ID,
		"crew_id":    entry.CrewID,
		"project_id": entry.ProjectID,
		"user_id":    actor.UserID,
	})
	return entry, nil
}

func (uc *SiteLogUseCase) Update(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.SiteLogInput) (*entity.SiteLog, error) {
	if err := uc.checkContent(in); err != nil {
		return nil, err
	}
	entry, err := uc.logs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("log", id, "get log", err)
	}

	setIfNotEmpty(&entry.Activities, in.Activities)
	setIfNotEmpty(&entry.Incidents, in.Incidents)
	setIfNotEmpty(&entry.Materials, in.Materials)
	setIfNotEmpty(&entry.WorkTimes, in.WorkTimes)
	setIfNotEmpty(&entry.Observations, in.Observations)
	setIfNotEmpty(&entry.ToolCondition, in.ToolCondition)
	entry.UpdatedAt = uc.opts.Now()

	if err := uc.logs.Update(ctx, entry); err != nil {
		return nil, mapRepoError("log", id, "update log", err)
	}

	uc.logger.Info(ctx, "Site log updated", map[string]interface{}{"log_id": id, "user_id": actor.UserID})
	return entry, nil
}

func (uc *SiteLogUseCase) Delete(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.logs.Delete(ctx, id); err != nil {
		return mapRepoError("log", id, "delete log", err)
	}
	uc.logger.Info(ctx, "Site log deleted", map[string]interface{}{"log_id": id, "user_id": actor.UserID})
	return nil
}

func (uc *SiteLogUseCase) checkContent(in inbound.SiteLogInput) error {
	return checkBanned(uc.opts.BannedWords,
		field{"actividades", in.Activities},
		field{"incidentes", in.Incidents},
		field{"materiales", in.Materials},
		field{"tiempos", in.WorkTimes},
		field{"observaciones", in.Observations},
		field{"estado_herramientas", in.ToolCondition},
	)
}
