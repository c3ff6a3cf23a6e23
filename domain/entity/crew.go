package entity

import "time"

const (
	CrewStatusActive   = "ACTIVA"
	CrewStatusInactive = "INACTIVA"
	CrewStatusFinished = "FINALIZADA"
)

type Crew struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	ProjectID *string       `json:"projectId"`
	StartDate time.Time     `json:"fecha_inicio"`
	Status    string        `json:"estado"`
	Members   []*CrewWorker `json:"crewWorkers"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CrewWorker links a worker to a crew with a role inside it.
type CrewWorker struct {
	ID         string    `json:"id"`
	CrewID     string    `json:"crewId"`
	WorkerID   string    `json:"workerId"`
	Role       string    `json:"role"`
	AssignedAt time.Time `json:"fecha_asignacion"`
}

func IsValidCrewStatus(status string) bool {
	switch status {
	case CrewStatusActive, CrewStatusInactive, CrewStatusFinished:
		return true
	}
	return false
}
