package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type PlanningUseCase struct {
	planning outbound.PlanningRepository
	logger   logger.Logger
	opts     Options
}

func NewPlanningUseCase(planning outbound.PlanningRepository, log logger.Logger, opts Options) *PlanningUseCase {
	return &PlanningUseCase{planning: planning, logger: log, opts: opts.withDefaults()}
}

var _ inbound.PlanningUseCase = (*PlanningUseCase)(nil)

func (uc *PlanningUseCase) ListTasks(ctx context.Context, filter outbound.TaskFilter) ([]*entity.Task, error) {
	tasks, err := uc.planning.FindTasks(ctx, filter)
	return tasks, mapRepoError("task", "", "list tasks", err)
}

func (uc *PlanningUseCase) CreateTask(ctx context.Context, actor outbound.TokenClaims, in inbound.TaskInput) (*entity.Task, error) {
	if err := requireFields(field{"crewId", in.CrewID}, field{"title", in.Title}); err != nil {
		return nil, err
	}

	now := uc.opts.Now()
	task := &entity.Task{
		ID:        uc.opts.NewID(),
		CrewID:    in.CrewID,
		Title:     in.Title,
		Priority:  entity.PriorityNormal,
		Status:    entity.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.applyTask(task, in); err != nil {
		return nil, err
	}

	if err := uc.planning.CreateTask(ctx, task); err != nil {
		return nil, mapRepoError("task", task.ID, "create task", err)
	}

	uc.logger.Info(ctx, "Task created", map[string]interface{}{"task_id": task.ID, "crew_id": task.CrewID, "user_id": actor.UserID})
	return task, nil
}

func (uc *PlanningUseCase) UpdateTask(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.TaskInput) (*entity.Task, error) {
	task, err := uc.planning.FindTaskByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("task", id, "get task", err)
	}
	setIfNotEmpty(&task.Title, in.Title)
	if err := uc.applyTask(task, in); err != nil {
		return nil, err
	}
	task.UpdatedAt = uc.opts.Now()

	if err := uc.planning.UpdateTask(ctx, task); err != nil {
		return nil, mapRepoError("task", id, "update task", err)
	}

	uc.logger.Info(ctx, "Task updated", map[string]interface{}{"task_id": id, "estado": task.Status, "user_id": actor.UserID})
	return task, nil
}

func (uc *PlanningUseCase) DeleteTask(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.planning.DeleteTask(ctx, id); err != nil {
		return mapRepoError("task", id, "delete task", err)
	}
	uc.logger.Info(ctx, "Task deleted", map[string]interface{}{"task_id": id, "user_id": actor.UserID})
	return nil
}

func (uc *PlanningUseCase) applyTask(task *entity.Task, in inbound.TaskInput) error {
	if in.Priority != "" && !entity.IsValidPriority(in.Priority) {
		return domainerr.ErrInvalidValue("prioridad", in.Priority)
	}
	if in.Status != "" && !entity.IsValidTaskStatus(in.Status) {
		return domainerr.ErrInvalidValue("estado", in.Status)
	}
	var description string
	if in.Description != nil {
		description = *in.Description
	}
	if err := checkBanned(uc.opts.BannedWords,
		field{"title", in.Title},
		field{"description", description},
	); err != nil {
		return err
	}
	due, err := parseOptionalDate("fecha_vencimiento", in.DueDate)
	if err != nil {
		return err
	}

	if due != nil {
		task.DueDate = due
	}
	if in.Description != nil {
		task.Description = nonEmpty(in.Description)
	}
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	if in.Status != "" {
		task.Status = in.Status
	}
	return nil
}

func (uc *PlanningUseCase) ListMilestones(ctx context.Context, filter outbound.MilestoneFilter) ([]*entity.Milestone, error) {
	milestones, err := uc.planning.FindMilestones(ctx, filter)
	return milestones, mapRepoError("milestone", "", "list milestones", err)
}

func (uc *PlanningUseCase) CreateMilestone(ctx context.Context, actor outbound.TokenClaims, in inbound.MilestoneInput) (*entity.Milestone, error) {
	if err := requireFields(
		field{"projectId", in.ProjectID},
		field{"title", in.Title},
		field{"targetDate", in.TargetDate},
	); err != nil {
		return nil, err
	}
	target, err := parseDate("targetDate", in.TargetDate)
	if err != nil {
		return nil, err
	}

	now := uc.opts.Now()
	milestone := &entity.Milestone{
		ID:          uc.opts.NewID(),
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: nonEmpty(in.Description),
		TargetDate:  target,
		Status:      entity.MilestoneStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.planning.CreateMilestone(ctx, milestone); err != nil {
		return nil, mapRepoError("milestone", milestone.ID, "create milestone", err)
	}

	uc.logger.Info(ctx, "Milestone created", map[string]interface{}{"milestone_id": milestone.ID, "project_id": milestone.ProjectID, "user_id": actor.UserID})
	return milestone, nil
}

func (uc *PlanningUseCase) UpdateMilestone(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.MilestoneInput) (*entity.Milestone, error) {
	if in.Status != "" && !entity.IsValidMilestoneStatus(in.Status) {
		return nil, domainerr.ErrInvalidValue("estado", in.Status)
	}
	milestone, err := uc.planning.FindMilestoneByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("milestone", id, "get milestone", err)
	}

	if in.TargetDate != "" {
		target, err := parseDate("targetDate", in.TargetDate)
		if err != nil {
			return nil, err
		}
		milestone.TargetDate = target
	}
	setIfNotEmpty(&milestone.Title, in.Title)
	setIfNotEmpty(&milestone.Status, in.Status)
	if in.Description != nil {
		milestone.Description = nonEmpty(in.Description)
	}
	milestone.UpdatedAt = uc.opts.Now()

	if err := uc.planning.UpdateMilestone(ctx, milestone); err != nil {
		return nil, mapRepoError("milestone", id, "update milestone", err)
	}

	uc.logger.Info(ctx, "Milestone updated", map[string]interface{}{"milestone_id": id, "estado": milestone.Status, "user_id": actor.UserID})
	return milestone, nil
}

func (uc *PlanningUseCase) DeleteMilestone(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.planning.DeleteMilestone(ctx, id); err != nil {
		return mapRepoError("milestone", id, "delete milestone", err)
	}
	uc.logger.Info(ctx, "Milestone deleted", map[string]interface{}{"milestone_id": id, "user_id": actor.UserID})
	return nil
}
