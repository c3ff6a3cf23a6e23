package inbound

import (
	"context"
	"time"

	"github.com/pradera/pradera/domain/entity"
)

type ProjectMetrics struct {
	TotalCrews        int `json:"totalCrews"`
	TotalWorkers      int `json:"totalWorkers"`
	TotalLogs         int `json:"totalLogs"`
	PendingRequests   int `json:"pendingRequests"`
	AdvancePercentage int `json:"advancePercentage"`
}

type CrewSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Workers int    `json:"workers"`
}

type ProjectReport struct {
	ProjectID   string            `json:"projectId"`
	ProjectName string            `json:"projectName"`
	ProjectType string            `json:"projectType"`
	Location    string            `json:"location"`
	Status      string            `json:"status"`
	Metrics     ProjectMetrics    `json:"metrics"`
	Crews       []CrewSummary     `json:"crews"`
	RecentLogs  []*entity.SiteLog `json:"recentLogs"`
}

type ProjectSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	WorkType          string `json:"tipo_obra"`
	Status            string `json:"estado"`
	Crews             int    `json:"crews"`
	Workers           int    `json:"workers"`
	Logs              int    `json:"logs"`
	AdvancePercentage int    `json:"advancePercentage"`
}

type WorkerProject struct {
	ProjectName *string   `json:"projectName"`
	CrewName    string    `json:"crewName"`
	Role        string    `json:"role"`
	AssignedAt  time.Time `json:"assignedAt"`
}

type WorkerReport struct {
	WorkerID         string          `json:"workerId"`
	WorkerName       string          `json:"workerName"`
	Specialty        string          `json:"especialidad"`
	Experience       int             `json:"experiencia"`
	Available        bool            `json:"disponibilidad"`
	ProjectsAssigned int             `json:"projectsAssigned"`
	Projects         []WorkerProject `json:"projects"`
}

type MaterialLevel struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Stock           int     `json:"stock"`
	Unit            string  `json:"unidad"`
	Price           float64 `json:"precio"`
	Level           string  `json:"estado"`
	RequestsPending int     `json:"requestsPending"`
}

type InventorySummary struct {
	TotalMaterials int     `json:"totalMaterials"`
	CriticalStock  int     `json:"criticalStock"`
	LowStock       int     `json:"lowStock"`
	NormalStock    int     `json:"normalStock"`
	TotalValue     float64 `json:"totalValue"`
}

type InventoryReport struct {
	Summary   InventorySummary `json:"summary"`
	Materials []MaterialLevel  `json:"materials"`
}

type ReportUseCase interface {
	Projects(ctx context.Context) ([]ProjectSummary, error)
	Project(ctx context.Context, projectID string) (*ProjectReport, error)
	Worker(ctx context.Context, workerID string) (*WorkerReport, error)
	Inventory(ctx context.Context) (*InventoryReport, error)
}
