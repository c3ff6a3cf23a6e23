package outbound

import (
	"context"
	"time"
)

// ProjectStats holds the raw counters behind a project report.
type ProjectStats struct {
	ProjectID       string `db:"id"`
	Name            string `db:"name"`
	WorkType        string `db:"tipo_obra"`
	WorkZone        string `db:"zona_trabajo"`
	Status          string `db:"estado"`
	Crews           int    `db:"crews"`
	Workers         int    `db:"workers"`
	Logs            int    `db:"logs"`
	PendingRequests int    `db:"pending_requests"`
}

type CrewStats struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Status  string `db:"estado"`
	Workers int    `db:"workers"`
}

type WorkerAssignment struct {
	ProjectName *string   `db:"project_name"`
	CrewName    string    `db:"crew_name"`
	Role        string    `db:"role"`
	AssignedAt  time.Time `db:"fecha_asignacion"`
}

type MaterialStock struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Unit            string  `db:"unidad"`
	Stock           int     `db:"stock"`
	Price           float64 `db:"precio"`
	PendingRequests int     `db:"pending_requests"`
}

type ReportRepository interface {
	ProjectStats(ctx context.Context) ([]ProjectStats, error)
	ProjectStatsByID(ctx context.Context, projectID string) (*ProjectStats, error)
	CrewStatsByProject(ctx context.Context, projectID string) ([]CrewStats, error)
	WorkerAssignments(ctx context.Context, workerID string) ([]WorkerAssignment, error)
	MaterialStock(ctx context.Context) ([]MaterialStock, error)
}
