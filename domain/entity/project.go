package entity

import "time"

const (
	ProjectStatusActive    = "activo"
	ProjectStatusPaused    = "pausado"
	ProjectStatusCompleted = "finalizado"

	DefaultProjectComplexity = "media"
)

// Project is a construction site ("obra"). JSON names follow the web client.
type Project struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	WorkType             string       `json:"tipo_obra"`
	Complexity           string       `json:"complejidad"`
	EstimatedDays        *int         `json:"duracion_estimada"`
	StartDate            *time.Time   `json:"fecha_inicio"`
	EndDate              *time.Time   `json:"fecha_termino"`
	WorkZone             string       `json:"zona_trabajo"`
	Status               string       `json:"estado"`
	Budget               *float64     `json:"presupuesto"`
	Supervisor           *string      `json:"supervisor"`
	TechnicalDescription *string      `json:"descripcion_tecnica"`
	Milestones           []*Milestone `json:"milestones,omitempty"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// DefaultMilestones returns the kickoff, midpoint and closing milestones for a
// project that has both a start and an end date. It returns nil otherwise.
func (p *Project) DefaultMilestones(newID func() string) []*Milestone {
	if p.StartDate == nil || p.EndDate == nil {
		return nil
	}
	start := *p.StartDate
	end := *p.EndDate
	days := end.Sub(start).Hours() / 24
	if days < 0 {
		days = 0
	}
	mid := start.Add(time.Duration(days / 2 * float64(24*time.Hour)))

	plan := []struct {
		title, description string
		target             time.Time
	}{
		{"Inicio del Proyecto", "Kickoff del proyecto", start},
		{"Fase Media", "Punto medio del proyecto", mid},
		{"Fin del Proyecto", "Cierre y entrega final", end},
	}

	milestones := make([]*Milestone, 0, len(plan))
	for _, m := range plan {
		description := m.description
		milestones = append(milestones, &Milestone{
			ID:          newID(),
			ProjectID:   p.ID,
			Title:       m.title,
			Description: &description,
			TargetDate:  m.target,
			Status:      MilestoneStatusPending,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.CreatedAt,
		})
	}
	return milestones
}
