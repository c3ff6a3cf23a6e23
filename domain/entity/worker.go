package entity

import "time"

const (
	WorkerStatusActive   = "activo"
	WorkerStatusInactive = "inactivo"

	MaxWorkerExperienceYears = 60
)

type Worker struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	RUT            *string       `json:"rut"`
	Specialty      string        `json:"especialidad"`
	Certifications string        `json:"certificaciones"`
	Experience     int           `json:"experiencia"`
	Available      bool          `json:"disponibilidad"`
	Status         string        `json:"estado"`
	CrewLinks      []*CrewWorker `json:"crewWorkers,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
