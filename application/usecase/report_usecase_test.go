package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
)

type recordingObserver struct {
	reports []string
}

func (o *recordingObserver) ObserveReport(report string, _ time.Duration) {
	o.reports = append(o.reports, report)
}

func TestAdvancePercentage(t *testing.T) {
	assert.Equal(t, 0, AdvancePercentage(0))
	assert.Equal(t, 30, AdvancePercentage(3))
	assert.Equal(t, 100, AdvancePercentage(10))
	assert.Equal(t, 100, AdvancePercentage(42))
}

func TestProjectReport(t *testing.T) {
	reports := &fakeReportRepo{
		projects: []outbound.ProjectStats{{
			ProjectID:       "p1",
			Name:            "Edificio Los Aromos",
			WorkType:        "edificacion",
			WorkZone:        "Temuco",
			Status:          "activo",
			Crews:           2,
			Workers:         9,
			Logs:            12,
			PendingRequests: 1,
		}},
		crews: []outbound.CrewStats{{ID: "c1", Name: "Cuadrilla A", Status: entity.CrewStatusActive, Workers: 5}},
	}
	logs := &fakeSiteLogRepo{}
	for day := 1; day <= 7; day++ {
		logs.logs = append(logs.logs, &entity.SiteLog{
			ID:        "l" + string(rune('0'+day)),
			ProjectID: "p1",
			Date:      time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		})
	}
	observer := &recordingObserver{}
	uc := NewReportUseCase(reports, newFakeWorkerRepo(), logs, observer)

	report, err := uc.Project(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "Temuco", report.Location)
	assert.Equal(t, 100, report.Metrics.AdvancePercentage)
	assert.Equal(t, 1, report.Metrics.PendingRequests)
	require.Len(t, report.Crews, 1)
	assert.Equal(t, 5, report.Crews[0].Workers)
	require.Len(t, report.RecentLogs, recentLogCount)
	assert.Equal(t, 7, report.RecentLogs[0].Date.Day())
	assert.Equal(t, []string{"project"}, observer.reports)
}

func TestProjectReport_Errors(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, newFakeWorkerRepo(), &fakeSiteLogRepo{}, nil)

	_, err := uc.Project(context.Background(), "ghost")
	requireAppError(t, err, domainerr.ErrCodeResourceNotFound)

	reports := &fakeReportRepo{projects: []outbound.ProjectStats{{ProjectID: "p1"}}}
	uc = NewReportUseCase(reports, newFakeWorkerRepo(), &fakeSiteLogRepo{err: errors.New("timeout")}, nil)
	_, err = uc.Project(context.Background(), "p1")
	requireAppError(t, err, domainerr.ErrCodeDatabaseError)
}

func TestProjectReport_EmptyLogsIsEmptySlice(t *testing.T) {
	reports := &fakeReportRepo{projects: []outbound.ProjectStats{{ProjectID: "p1"}}}
	uc := NewReportUseCase(reports, newFakeWorkerRepo(), &fakeSiteLogRepo{}, nil)

	report, err := uc.Project(context.Background(), "p1")
	require.NoError(t, err)
	assert.NotNil(t, report.RecentLogs)
	assert.Empty(t, report.RecentLogs)
	assert.NotNil(t, report.Crews)
}

func TestWorkerReport(t *testing.T) {
	workers := newFakeWorkerRepo()
	workers.workers["w1"] = &entity.Worker{ID: "w1", Name: "Pedro", Specialty: "carpintero", Experience: 8, Available: true}
	project := "Edificio Los Aromos"
	reports := &fakeReportRepo{assignments: []outbound.WorkerAssignment{
		{ProjectName: &project, CrewName: "Cuadrilla A", Role: "jefe"},
		{CrewName: "Cuadrilla sin obra", Role: "ayudante"},
	}}
	uc := NewReportUseCase(reports, workers, &fakeSiteLogRepo{}, nil)

	report, err := uc.Worker(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, 2, report.ProjectsAssigned)
	assert.Nil(t, report.Projects[1].ProjectName)

	_, err = uc.Worker(context.Background(), "ghost")
	requireAppError(t, err, domainerr.ErrCodeResourceNotFound)
}

func TestInventoryReport(t *testing.T) {
	reports := &fakeReportRepo{stock: []outbound.MaterialStock{
		{ID: "m1", Name: "Cemento", Stock: 5, Price: 4000},
		{ID: "m2", Name: "Fierro", Stock: 6, Price: 3500, PendingRequests: 2},
		{ID: "m3", Name: "Arena", Stock: 20, Price: 100},
		{ID: "m4", Name: "Clavos", Stock: 21, Price: 10},
	}}
	uc := NewReportUseCase(reports, newFakeWorkerRepo(), &fakeSiteLogRepo{}, nil)

	report, err := uc.Inventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Summary.TotalMaterials)
	assert.Equal(t, 1, report.Summary.CriticalStock)
	assert.Equal(t, 2, report.Summary.LowStock)
	assert.Equal(t, 1, report.Summary.NormalStock)
	assert.InDelta(t, 5*4000+6*3500+20*100+21*10, report.Summary.TotalValue, 0.001)

	levels := []string{entity.StockCritical, entity.StockLow, entity.StockLow, entity.StockNormal}
	for i, m := range report.Materials {
		assert.Equal(t, levels[i], m.Level, m.Name)
	}
	assert.Equal(t, 2, report.Materials[1].RequestsPending)
}
