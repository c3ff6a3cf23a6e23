package entity

import "time"

const (
	StockCritical = "CRITICO"
	StockLow      = "BAJO"
	StockNormal   = "NORMAL"

	criticalStockThreshold = 5
	lowStockThreshold      = 20
)

type Material struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"descripcion"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unidad"`
	Price       float64   `json:"precio"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StockLevel classifies the current stock for inventory reports.
func StockLevel(stock int) string {
	switch {
	case stock <= criticalStockThreshold:
		return StockCritical
	case stock <= lowStockThreshold:
		return StockLow
	default:
		return StockNormal
	}
}

type MaterialRequest struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"materialId"`
	ProjectID  string    `json:"projectId"`
	CrewID     string    `json:"crewId"`
	Quantity   int       `json:"cantidad"`
	Status     string    `json:"estado"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
