package inbound

import (
	"context"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

// Inputs below share one shape for create and update. On update, empty
// strings and nil pointers leave the stored value untouched. Dates accept
// RFC 3339 or YYYY-MM-DD.

type ProjectInput struct {
	Name                 string   `json:"name"`
	WorkType             string   `json:"tipo_obra"`
	Complexity           string   `json:"complejidad"`
	EstimatedDays        *int     `json:"duracion_estimada"`
	StartDate            *string  `json:"fecha_inicio"`
	EndDate              *string  `json:"fecha_termino"`
	WorkZone             string   `json:"zona_trabajo"`
	Status               string   `json:"estado"`
	Budget               *float64 `json:"presupuesto"`
	Supervisor           *string  `json:"supervisor"`
	TechnicalDescription *string  `json:"descripcion_tecnica"`
}

type ProjectUseCase interface {
	List(ctx context.Context) ([]*entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	Create(ctx context.Context, actor outbound.TokenClaims, in ProjectInput) (*entity.Project, error)
	Update(ctx context.Context, actor outbound.TokenClaims, id string, in ProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, actor outbound.TokenClaims, id string) error
}

type WorkerInput struct {
	Name           string  `json:"name"`
	RUT            *string `json:"rut"`
	Specialty      string  `json:"especialidad"`
	Certifications string  `json:"certificaciones"`
	Experience     *int    `json:"experiencia"`
	Available      *bool   `json:"disponibilidad"`
	Status         string  `json:"estado"`
}

type WorkerUseCase interface {
	List(ctx context.Context) ([]*entity.Worker, error)
	Get(ctx context.Context, id string) (*entity.Worker, error)
	Create(ctx context.Context, actor outbound.TokenClaims, in WorkerInput) (*entity.Worker, error)
	Update(ctx context.Context, actor outbound.TokenClaims, id string, in WorkerInput) (*entity.Worker, error)
	Delete(ctx context.Context, actor outbound.TokenClaims, id string) error
}

type CrewInput struct {
	Name      string  `json:"name"`
	ProjectID *string `json:"projectId"`
	StartDate *string `json:"fecha_inicio"`
	Status    string  `json:"estado"`
}

type CrewMemberInput struct {
	WorkerID string `json:"workerId"`
	Role     string `json:"role"`
}

type CrewUseCase interface {
	List(ctx context.Context) ([]*entity.Crew, error)
	Get(ctx context.Context, id string) (*entity.Crew, error)
	Create(ctx context.Context, actor outbound.TokenClaims, in CrewInput) (*entity.Crew, error)
	Update(ctx context.Context, actor outbound.TokenClaims, id string, in CrewInput) (*entity.Crew, error)
	Delete(ctx context.Context, actor outbound.TokenClaims, id string) error
	AddWorker(ctx context.Context, actor outbound.TokenClaims, crewID string, in CrewMemberInput) (*entity.CrewWorker, error)
	RemoveWorker(ctx context.Context, actor outbound.TokenClaims, crewWorkerID string) error
}

type MaterialInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"descripcion"`
	Stock       *int     `json:"stock"`
	Unit        string   `json:"unidad"`
	Price       *float64 `json:"precio"`
}

type MaterialRequestInput struct {
	MaterialID string `json:"materialId"`
	ProjectID  string `json:"projectId"`
	CrewID     string `json:"crewId"`
	Quantity   *int   `json:"cantidad"`
	Status     string `json:"estado"`
}

type MaterialUseCase interface {
	List(ctx context.Context) ([]*entity.Material, error)
	Get(ctx context.Context, id string) (*entity.Material, error)
	Create(ctx context.Context, actor outbound.TokenClaims, in MaterialInput) (*entity.Material, error)
	Update(ctx context.Context, actor outbound.TokenClaims, id string, in MaterialInput) (*entity.Material, error)
	Delete(ctx context.Context, actor outbound.TokenClaims, id string) error

	ListRequests(ctx context.Context) ([]*entity.MaterialRequest, error)
	CreateRequest(ctx context.Context, actor outbound.TokenClaims, in MaterialRequestInput) (*entity.MaterialRequest, error)
	UpdateRequest(ctx context.Context, actor outbound.TokenClaims, id string, in MaterialRequestInput) (*entity.MaterialRequest, error)
	DeleteRequest(ctx context.Context, actor outbound.TokenClaims, id string) error
}

type SiteLogInput struct {
	CrewID        string `json:"crewId"`
	ProjectID     string `json:"projectId"`
	Date          string `json:"fecha"`
	Activities    string `json:"actividades"`
	Incidents     string `json:"incidentes"`
	Materials     string `json:"materiales"`
	WorkTimes     string `json:"tiempos"`
	Observations  string `json:"observaciones"`
	ToolCondition string `json:"estado_herramientas"`
}

type SiteLogUseCase interface {
	List(ctx context.Context, filter outbound.SiteLogFilter) ([]*entity.SiteLog, error)
	Get(ctx context.Context, id string) (*entity.SiteLog, error)
	Create(ctx context.Context, actor outbound.TokenClaims, in SiteLogInput) (*entity.SiteLog, error)
	Update(ctx context.Context, actor outbound.TokenClaims, id string, in SiteLogInput) (*entity.SiteLog, error)
	Delete(ctx context.Context, actor outbound.TokenClaims, id string) error
}

type MessageInput struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

type CommunicationRequestInput struct {
	RequestType string  `json:"requestType"`
	Description string  `json:"description"`
	Urgency     string  `json:"urgency"`
	CrewID      string  `json:"crewId"`
	Status      string  `json:"estado"`
	Answer      *string `json:"respuesta"`
}

type CommunicationUseCase interface {
	ListMessages(ctx context.Context, filter outbound.MessageFilter) ([]*entity.Message, error)
	SendMessage(ctx context.Context, actor outbound.TokenClaims, in MessageInput) (*entity.Message, error)

	ListRequests(ctx context.Context, filter outbound.RequestFilter) ([]*entity.CommunicationRequest, error)
	CreateRequest(ctx context.Context, actor outbound.TokenClaims, in CommunicationRequestInput) (*entity.CommunicationRequest, error)
	UpdateRequest(ctx context.Context, actor outbound.TokenClaims, id string, in CommunicationRequestInput) (*entity.CommunicationRequest, error)
	DeleteRequest(ctx context.Context, actor outbound.TokenClaims, id string) error
}

type CertificateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CertificateWorkerInput struct {
	WorkerID string `json:"workerId"`
}

type CertificateUseCase interface {
	List(ctx context.Context) ([]*entity.Certificate, error)
	Get(ctx context.Context, id string) (*entity.Certificate, error)
	Create(ctx context.Context, actor outbound.TokenClaims, in CertificateInput) (*entity.Certificate, error)
	Update(ctx context.Context, actor outbound.TokenClaims, id string, in CertificateInput) (*entity.Certificate, error)
	Delete(ctx context.Context, actor outbound.TokenClaims, id string) error
	AddWorker(ctx context.Context, actor outbound.TokenClaims, certificateID string, in CertificateWorkerInput) (*entity.Certificate, error)
	RemoveWorker(ctx context.Context, actor outbound.TokenClaims, certificateID string, in CertificateWorkerInput) (*entity.Certificate, error)
}

type TaskInput struct {
	CrewID      string  `json:"crewId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"prioridad"`
	Status      string  `json:"estado"`
	DueDate     *string `json:"fecha_vencimiento"`
}

type MilestoneInput struct {
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TargetDate  string  `json:"targetDate"`
	Status      string  `json:"estado"`
}

type PlanningUseCase interface {
	ListTasks(ctx context.Context, filter outbound.TaskFilter) ([]*entity.Task, error)
	CreateTask(ctx context.Context, actor outbound.TokenClaims, in TaskInput) (*entity.Task, error)
	UpdateTask(ctx context.Context, actor outbound.TokenClaims, id string, in TaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, actor outbound.TokenClaims, id string) error

	ListMilestones(ctx context.Context, filter outbound.MilestoneFilter) ([]*entity.Milestone, error)
	CreateMilestone(ctx context.Context, actor outbound.TokenClaims, in MilestoneInput) (*entity.Milestone, error)
	UpdateMilestone(ctx context.Context, actor outbound.TokenClaims, id string, in MilestoneInput) (*entity.Milestone, error)
	DeleteMilestone(ctx context.Context, actor outbound.TokenClaims, id string) error
}
