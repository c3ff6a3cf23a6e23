package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
)

const (
	advancePerLog  = 10
	recentLogCount = 5
)

// ReportObserver receives report build timings. *metrics.Metrics satisfies it.
type ReportObserver interface {
	ObserveReport(report string, duration time.Duration)
}

type ReportUseCase struct {
	reports  outbound.ReportRepository
	workers  outbound.WorkerRepository
	logs     outbound.SiteLogRepository
	observer ReportObserver
}

func NewReportUseCase(reports outbound.ReportRepository, workers outbound.WorkerRepository, logs outbound.SiteLogRepository, observer ReportObserver) *ReportUseCase {
	return &ReportUseCase{reports: reports, workers: workers, logs: logs, observer: observer}
}

var _ inbound.ReportUseCase = (*ReportUseCase)(nil)

// AdvancePercentage estimates project progress from its log count, capped
// at 100.
func AdvancePercentage(logCount int) int {
	return min(100, logCount*advancePerLog)
}

func (uc *ReportUseCase) Projects(ctx context.Context) ([]inbound.ProjectSummary, error) {
	defer uc.observe("projects", time.Now())

	stats, err := uc.reports.ProjectStats(ctx)
	if err != nil {
		return nil, domainerr.ErrDatabaseError("project stats", err)
	}

	summaries := make([]inbound.ProjectSummary, 0, len(stats))
	for _, s := range stats {
		summaries = append(summaries, inbound.ProjectSummary{
			ID:                s.ProjectID,
			Name:              s.Name,
			WorkType:          s.WorkType,
			Status:            s.Status,
			Crews:             s.Crews,
			Workers:           s.Workers,
			Logs:              s.Logs,
			AdvancePercentage: AdvancePercentage(s.Logs),
		})
	}
	return summaries, nil
}

// Project loads the counters, crews and latest logs of one project
// concurrently.
func (uc *ReportUseCase) Project(ctx context.Context, projectID string) (*inbound.ProjectReport, error) {
	defer uc.observe("project", time.Now())

	var (
		stats  *outbound.ProjectStats
		crews  []outbound.CrewStats
		recent []*entity.SiteLog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = uc.reports.ProjectStatsByID(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		crews, err = uc.reports.CrewStatsByProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.logs.FindAll(gctx, outbound.SiteLogFilter{ProjectID: projectID, Limit: recentLogCount})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, mapRepoError("project", projectID, "project report", err)
	}

	report := &inbound.ProjectReport{
		ProjectID:   stats.ProjectID,
		ProjectName: stats.Name,
		ProjectType: stats.WorkType,
		Location:    stats.WorkZone,
		Status:      stats.Status,
		Metrics: inbound.ProjectMetrics{
			TotalCrews:        stats.Crews,
			TotalWorkers:      stats.Workers,
			TotalLogs:         stats.Logs,
			PendingRequests:   stats.PendingRequests,
			AdvancePercentage: AdvancePercentage(stats.Logs),
		},
		Crews:      make([]inbound.CrewSummary, 0, len(crews)),
		RecentLogs: recent,
	}
	for _, c := range crews {
		report.Crews = append(report.Crews, inbound.CrewSummary{ID: c.ID, Name: c.Name, State: c.Status, Workers: c.Workers})
	}
	if report.RecentLogs == nil {
		report.RecentLogs = []*entity.SiteLog{}
	}
	return report, nil
}

func (uc *ReportUseCase) Worker(ctx context.Context, workerID string) (*inbound.WorkerReport, error) {
	defer uc.observe("worker", time.Now())

	worker, err := uc.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, mapRepoError("worker", workerID, "worker report", err)
	}
	assignments, err := uc.reports.WorkerAssignments(ctx, workerID)
	if err != nil {
		return nil, domainerr.ErrDatabaseError("worker assignments", err)
	}

	report := &inbound.WorkerReport{
		WorkerID:         worker.ID,
		WorkerName:       worker.Name,
		Specialty:        worker.Specialty,
		Experience:       worker.Experience,
		Available:        worker.Available,
		ProjectsAssigned: len(assignments),
		Projects:         make([]inbound.WorkerProject, 0, len(assignments)),
	}
	for _, a := range assignments {
		report.Projects = append(report.Projects, inbound.WorkerProject{
			ProjectName: a.ProjectName,
			CrewName:    a.CrewName,
			Role:        a.Role,
			AssignedAt:  a.AssignedAt,
		})
	}
	return report, nil
}

func (uc *ReportUseCase) Inventory(ctx context.Context) (*inbound.InventoryReport, error) {
	defer uc.observe("inventory", time.Now())

	stock, err := uc.reports.MaterialStock(ctx)
	if err != nil {
		return nil, domainerr.ErrDatabaseError("material stock", err)
	}

	report := &inbound.InventoryReport{
		Summary:   inbound.InventorySummary{TotalMaterials: len(stock)},
		Materials: make([]inbound.MaterialLevel, 0, len(stock)),
	}
	for _, m := range stock {
		level := entity.StockLevel(m.Stock)
		switch level {
		case entity.StockCritical:
			report.Summary.CriticalStock++
		case entity.StockLow:
			report.Summary.LowStock++
		default:
			report.Summary.NormalStock++
		}
		report.Summary.TotalValue += float64(m.Stock) * m.Price
		report.Materials = append(report.Materials, inbound.MaterialLevel{
			ID:              m.ID,
			Name:            m.Name,
			Stock:           m.Stock,
			Unit:            m.Unit,
			Price:           m.Price,
			Level:           level,
			RequestsPending: m.PendingRequests,
		})
	}
	return report, nil
}

func (uc *ReportUseCase) observe(report string, start time.Time) {
	if uc.observer != nil {
		uc.observer.ObserveReport(report, time.Since(start))
	}
}
