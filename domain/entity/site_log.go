package entity

import "time"

// SiteLog is a daily crew log entry ("bitácora").
type SiteLog struct {
	ID            string    `json:"id"`
	CrewID        string    `json:"crewId"`
	ProjectID     string    `json:"projectId"`
	Date          time.Time `json:"fecha"`
	Activities    string    `json:"actividades"`
	Incidents     string    `json:"incidentes"`
	Materials     string    `json:"materiales"`
	WorkTimes     string    `json:"tiempos"`
	Observations  string    `json:"observaciones"`
	ToolCondition string    `json:"estado_herramientas"`
	ResponsibleID string    `json:"responsableId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
