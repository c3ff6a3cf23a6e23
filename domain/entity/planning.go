package entity

import "time"

const (
	TaskStatusPending    = "PENDIENTE"
	TaskStatusInProgress = "EN_PROGRESO"
	TaskStatusDone       = "COMPLETADA"

	PriorityLow    = "BAJA"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "ALTA"

	MilestoneStatusPending = "PENDIENTE"
	MilestoneStatusReached = "CUMPLIDO"
	MilestoneStatusDelayed = "ATRASADO"
)

type Task struct {
	ID          string     `json:"id"`
	CrewID      string     `json:"crewId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"prioridad"`
	Status      string     `json:"estado"`
	DueDate     *time.Time `json:"fecha_vencimiento"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Milestone struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	TargetDate  time.Time `json:"targetDate"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

func IsValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

func IsValidMilestoneStatus(s string) bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusReached, MilestoneStatusDelayed:
		return true
	}
	return false
}
