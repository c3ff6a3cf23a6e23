package outbound

import (
	"context"

	"github.com/pradera/pradera/domain/entity"
)

type ProjectRepository interface {
	// Create stores the project and its generated milestones atomically.
	Create(ctx context.Context, project *entity.Project, milestones []*entity.Milestone) error
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	FindAll(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	FindByID(ctx context.Context, id string) (*entity.Worker, error)
	FindAll(ctx context.Context) ([]*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id string) error
}

type CrewRepository interface {
	Create(ctx context.Context, crew *entity.Crew) error
	FindByID(ctx context.Context, id string) (*entity.Crew, error)
	FindAll(ctx context.Context) ([]*entity.Crew, error)
	Update(ctx context.Context, crew *entity.Crew) error
	// Delete removes the crew's worker links and the crew in one transaction.
	Delete(ctx context.Context, id string) error
	AddWorker(ctx context.Context, link *entity.CrewWorker) error
	RemoveWorker(ctx context.Context, crewWorkerID string) error
}

type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	FindByID(ctx context.Context, id string) (*entity.Material, error)
	FindAll(ctx context.Context) ([]*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	Delete(ctx context.Context, id string) error

	CreateRequest(ctx context.Context, request *entity.MaterialRequest) error
	FindRequestByID(ctx context.Context, id string) (*entity.MaterialRequest, error)
	FindAllRequests(ctx context.Context) ([]*entity.MaterialRequest, error)
	UpdateRequest(ctx context.Context, request *entity.MaterialRequest) error
	DeleteRequest(ctx context.Context, id string) error
}

type SiteLogFilter struct {
	CrewID    string
	ProjectID string
	// Limit caps the result, newest first. Zero means no limit.
	Limit int
}

type SiteLogRepository interface {
	Create(ctx context.Context, log *entity.SiteLog) error
	FindByID(ctx context.Context, id string) (*entity.SiteLog, error)
	FindAll(ctx context.Context, filter SiteLogFilter) ([]*entity.SiteLog, error)
	Update(ctx context.Context, log *entity.SiteLog) error
	Delete(ctx context.Context, id string) error
}

type MessageFilter struct {
	ConversationID string
	UserID         string
}

type RequestFilter struct {
	Status   string
	SenderID string
}

type CommunicationRepository interface {
	CreateMessage(ctx context.Context, message *entity.Message) error
	FindMessages(ctx context.Context, filter MessageFilter) ([]*entity.Message, error)

	CreateRequest(ctx context.Context, request *entity.CommunicationRequest) error
	FindRequestByID(ctx context.Context, id string) (*entity.CommunicationRequest, error)
	FindRequests(ctx context.Context, filter RequestFilter) ([]*entity.CommunicationRequest, error)
	UpdateRequest(ctx context.Context, request *entity.CommunicationRequest) error
	DeleteRequest(ctx context.Context, id string) error
}

type CertificateRepository interface {
	Create(ctx context.Context, certificate *entity.Certificate) error
	FindByID(ctx context.Context, id string) (*entity.Certificate, error)
	FindAll(ctx context.Context) ([]*entity.Certificate, error)
	Update(ctx context.Context, certificate *entity.Certificate) error
	Delete(ctx context.Context, id string) error
	AddWorker(ctx context.Context, certificateID, workerID string) error
	RemoveWorker(ctx context.Context, certificateID, workerID string) error
}

type TaskFilter struct {
	CrewID string
	Status string
}

type MilestoneFilter struct {
	ProjectID string
	Status    string
}

type PlanningRepository interface {
	CreateTask(ctx context.Context, task *entity.Task) error
	FindTaskByID(ctx context.Context, id string) (*entity.Task, error)
	FindTasks(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, task *entity.Task) error
	DeleteTask(ctx context.Context, id string) error

	CreateMilestone(ctx context.Context, milestone *entity.Milestone) error
	FindMilestoneByID(ctx context.Context, id string) (*entity.Milestone, error)
	// FindMilestones orders by target date, earliest first.
	FindMilestones(ctx context.Context, filter MilestoneFilter) ([]*entity.Milestone, error)
	UpdateMilestone(ctx context.Context, milestone *entity.Milestone) error
	DeleteMilestone(ctx context.Context, id string) error
}
