package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type ProjectUseCase struct {
	projects outbound.ProjectRepository
	logger   logger.Logger
	opts     Options
}

func NewProjectUseCase(projects outbound.ProjectRepository, log logger.Logger, opts Options) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, logger: log, opts: opts.withDefaults()}
}

var _ inbound.ProjectUseCase = (*ProjectUseCase)(nil)

func (uc *ProjectUseCase) List(ctx context.Context) ([]*entity.Project, error) {
	projects, err := uc.projects.FindAll(ctx)
	return projects, mapRepoError("project", "", "list projects", err)
}

func (uc *ProjectUseCase) Get(ctx context.Context, id string) (*entity.Project, error) {
	project, err := uc.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("project", id, "get project", err)
	}
	return project, nil
}

// Create stores a project. When both dates are given, start, midpoint and end
// milestones are created with it.
func (uc *ProjectUseCase) Create(ctx context.Context, actor outbound.TokenClaims, in inbound.ProjectInput) (*entity.Project, error) {
	if err := requireFields(
		field{"name", in.Name},
		field{"tipo_obra", in.WorkType},
		field{"zona_trabajo", in.WorkZone},
	); err != nil {
		return nil, err
	}

	project := &entity.Project{
		ID:         uc.opts.NewID(),
		Name:       in.Name,
		WorkType:   in.WorkType,
		Complexity: entity.DefaultProjectComplexity,
		WorkZone:   in.WorkZone,
		Status:     entity.ProjectStatusActive,
	}
	if err := uc.apply(project, in); err != nil {
		return nil, err
	}
	project.CreatedAt = uc.opts.Now()
	project.UpdatedAt = project.CreatedAt

	milestones := project.DefaultMilestones(uc.opts.NewID)
	if err := uc.projects.Create(ctx, project, milestones); err != nil {
		return nil, mapRepoError("project", project.ID, "create project", err)
	}
	project.Milestones = milestones

	uc.logger.Info(ctx, "Project created", map[string]interface{}{
		"project_id": project.ID,
		"milestones": len(milestones),
		"user_id":    actor.UserID,
	})
	return project, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.ProjectInput) (*entity.Project, error) {
	project, err := uc.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("project", id, "get project", err)
	}

	if in.Name != "" {
		project.Name = in.Name
	}
	if in.WorkType != "" {
		project.WorkType = in.WorkType
	}
	if in.WorkZone != "" {
		project.WorkZone = in.WorkZone
	}
	if err := uc.apply(project, in); err != nil {
		return nil, err
	}
	project.UpdatedAt = uc.opts.Now()

	if err := uc.projects.Update(ctx, project); err != nil {
		return nil, mapRepoError("project", id, "update project", err)
	}

	uc.logger.Info(ctx, "Project updated", map[string]interface{}{"project_id": id, "user_id": actor.UserID})
	return project, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.projects.Delete(ctx, id); err != nil {
		return mapRepoError("project", id, "delete project", err)
	}
	uc.logger.Info(ctx, "Project deleted", map[string]interface{}{"project_id": id, "user_id": actor.UserID})
	return nil
}

// apply validates and copies the optional fields shared by create and update.
func (uc *ProjectUseCase) apply(project *entity.Project, in inbound.ProjectInput) error {
	if err := checkMinInt("duracion_estimada", in.EstimatedDays, 0); err != nil {
		return err
	}
	if err := checkMinFloat("presupuesto", in.Budget, 0); err != nil {
		return err
	}
	var description string
	if in.TechnicalDescription != nil {
		description = *in.TechnicalDescription
	}
	if err := checkBanned(uc.opts.BannedWords,
		field{"name", in.Name},
		field{"descripcion_tecnica", description},
	); err != nil {
		return err
	}

	start, err := parseOptionalDate("fecha_inicio", in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate("fecha_termino", in.EndDate)
	if err != nil {
		return err
	}
	if start == nil {
		start = project.StartDate
	}
	if end == nil {
		end = project.EndDate
	}
	if start != nil && end != nil && end.Before(*start) {
		return domainerr.ErrInvalidValue("fecha_termino", end.Format("2006-01-02"))
	}

	project.StartDate = start
	project.EndDate = end
	if in.Complexity != "" {
		project.Complexity = in.Complexity
	}
	if in.Status != "" {
		project.Status = in.Status
	}
	if in.EstimatedDays != nil {
		project.EstimatedDays = in.EstimatedDays
	}
	if in.Budget != nil {
		project.Budget = in.Budget
	}
	if v := nonEmpty(in.Supervisor); v != nil {
		project.Supervisor = v
	}
	if v := nonEmpty(in.TechnicalDescription); v != nil {
		project.TechnicalDescription = v
	}
	return nil
}
