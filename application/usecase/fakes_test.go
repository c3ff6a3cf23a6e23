package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testOptions(banned ...string) Options {
	var n int
	return Options{
		BannedWords: banned,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Now: func() time.Time { return fixedNow },
	}
}

var actor = outbound.TokenClaims{UserID: "user-1", Email: "ana@pradera.cl", Role: entity.RoleSupervisor}

type fakeProjectRepo struct {
	projects   map[string]*entity.Project
	milestones []*entity.Milestone
	createErr  error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*entity.Project{}}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entity.Project, milestones []*entity.Milestone) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.projects[p.ID] = p
	f.milestones = append(f.milestones, milestones...)
	return nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id string) (*entity.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectRepo) FindAll(context.Context) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	if _, ok := f.projects[p.ID]; !ok {
		return outbound.ErrNotFound
	}
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeWorkerRepo struct {
	workers map[string]*entity.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: map[string]*entity.Worker{}}
}

func (f *fakeWorkerRepo) Create(_ context.Context, w *entity.Worker) error {
	for _, existing := range f.workers {
		if w.RUT != nil && existing.RUT != nil && *existing.RUT == *w.RUT {
			return outbound.ErrDuplicate
		}
	}
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) FindByID(_ context.Context, id string) (*entity.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkerRepo) FindAll(context.Context) ([]*entity.Worker, error) {
	var out []*entity.Worker
	for _, w := range f.workers {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkerRepo) Update(_ context.Context, w *entity.Worker) error {
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.workers[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(f.workers, id)
	return nil
}

type fakeCrewRepo struct {
	crews map[string]*entity.Crew
	links map[string]*entity.CrewWorker
}

func newFakeCrewRepo() *fakeCrewRepo {
	return &fakeCrewRepo{crews: map[string]*entity.Crew{}, links: map[string]*entity.CrewWorker{}}
}

func (f *fakeCrewRepo) Create(_ context.Context, c *entity.Crew) error {
	f.crews[c.ID] = c
	return nil
}

func (f *fakeCrewRepo) FindByID(_ context.Context, id string) (*entity.Crew, error) {
	c, ok := f.crews[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCrewRepo) FindAll(context.Context) ([]*entity.Crew, error) {
	var out []*entity.Crew
	for _, c := range f.crews {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCrewRepo) Update(_ context.Context, c *entity.Crew) error {
	f.crews[c.ID] = c
	return nil
}

func (f *fakeCrewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.crews[id]; !ok {
		return outbound.ErrNotFound
	}
	for linkID, link := range f.links {
		if link.CrewID == id {
			delete(f.links, linkID)
		}
	}
	delete(f.crews, id)
	return nil
}

func (f *fakeCrewRepo) AddWorker(_ context.Context, link *entity.CrewWorker) error {
	if _, ok := f.crews[link.CrewID]; !ok {
		return outbound.ErrReferenceViolation
	}
	f.links[link.ID] = link
	return nil
}

func (f *fakeCrewRepo) RemoveWorker(_ context.Context, id string) error {
	if _, ok := f.links[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(f.links, id)
	return nil
}

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
	requests  map[string]*entity.MaterialRequest
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: map[string]*entity.Material{}, requests: map[string]*entity.MaterialRequest{}}
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	f.materials[m.ID] = m
	return nil
}

func (f *fakeMaterialRepo) FindByID(_ context.Context, id string) (*entity.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) FindAll(context.Context) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.materials {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	f.materials[m.ID] = m
	return nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id string) error {
	delete(f.materials, id)
	return nil
}

func (f *fakeMaterialRepo) CreateRequest(_ context.Context, r *entity.MaterialRequest) error {
	if _, ok := f.materials[r.MaterialID]; !ok {
		return outbound.ErrReferenceViolation
	}
	f.requests[r.ID] = r
	return nil
}

func (f *fakeMaterialRepo) FindRequestByID(_ context.Context, id string) (*entity.MaterialRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeMaterialRepo) FindAllRequests(context.Context) ([]*entity.MaterialRequest, error) {
	var out []*entity.MaterialRequest
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeMaterialRepo) UpdateRequest(_ context.Context, r *entity.MaterialRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeMaterialRepo) DeleteRequest(_ context.Context, id string) error {
	delete(f.requests, id)
	return nil
}

type fakeSiteLogRepo struct {
	logs []*entity.SiteLog
	err  error
}

func (f *fakeSiteLogRepo) Create(_ context.Context, l *entity.SiteLog) error {
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeSiteLogRepo) FindByID(_ context.Context, id string) (*entity.SiteLog, error) {
	for _, l := range f.logs {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, outbound.ErrNotFound
}

func (f *fakeSiteLogRepo) FindAll(_ context.Context, filter outbound.SiteLogFilter) ([]*entity.SiteLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.SiteLog
	for _, l := range f.logs {
		if filter.CrewID != "" && l.CrewID != filter.CrewID {
			continue
		}
		if filter.ProjectID != "" && l.ProjectID != filter.ProjectID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeSiteLogRepo) Update(_ context.Context, l *entity.SiteLog) error {
	for i, existing := range f.logs {
		if existing.ID == l.ID {
			f.logs[i] = l
			return nil
		}
	}
	return outbound.ErrNotFound
}

func (f *fakeSiteLogRepo) Delete(_ context.Context, id string) error {
	for i, existing := range f.logs {
		if existing.ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return outbound.ErrNotFound
}

type fakeCommunicationRepo struct {
	messages []*entity.Message
	requests map[string]*entity.CommunicationRequest
}

func newFakeCommunicationRepo() *fakeCommunicationRepo {
	return &fakeCommunicationRepo{requests: map[string]*entity.CommunicationRequest{}}
}

func (f *fakeCommunicationRepo) CreateMessage(_ context.Context, m *entity.Message) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeCommunicationRepo) FindMessages(_ context.Context, filter outbound.MessageFilter) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range f.messages {
		if filter.ConversationID != "" && m.ConversationID != filter.ConversationID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeCommunicationRepo) CreateRequest(_ context.Context, r *entity.CommunicationRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeCommunicationRepo) FindRequestByID(_ context.Context, id string) (*entity.CommunicationRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeCommunicationRepo) FindRequests(context.Context, outbound.RequestFilter) ([]*entity.CommunicationRequest, error) {
	var out []*entity.CommunicationRequest
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeCommunicationRepo) UpdateRequest(_ context.Context, r *entity.CommunicationRequest) error {
	f.requests[r.ID] = r
	return nil
}

func (f *fakeCommunicationRepo) DeleteRequest(_ context.Context, id string) error {
	delete(f.requests, id)
	return nil
}

type fakeCertificateRepo struct {
	certificates map[string]*entity.Certificate
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{certificates: map[string]*entity.Certificate{}}
}

func (f *fakeCertificateRepo) Create(_ context.Context, c *entity.Certificate) error {
	f.certificates[c.ID] = c
	return nil
}

func (f *fakeCertificateRepo) FindByID(_ context.Context, id string) (*entity.Certificate, error) {
	c, ok := f.certificates[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *c
	cp.WorkerIDs = append([]string{}, c.WorkerIDs...)
	return &cp, nil
}

func (f *fakeCertificateRepo) FindAll(context.Context) ([]*entity.Certificate, error) {
	var out []*entity.Certificate
	for _, c := range f.certificates {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCertificateRepo) Update(_ context.Context, c *entity.Certificate) error {
	f.certificates[c.ID] = c
	return nil
}

func (f *fakeCertificateRepo) Delete(_ context.Context, id string) error {
	delete(f.certificates, id)
	return nil
}

func (f *fakeCertificateRepo) AddWorker(_ context.Context, certificateID, workerID string) error {
	c, ok := f.certificates[certificateID]
	if !ok {
		return outbound.ErrNotFound
	}
	c.WorkerIDs = append(c.WorkerIDs, workerID)
	return nil
}

func (f *fakeCertificateRepo) RemoveWorker(_ context.Context, certificateID, workerID string) error {
	c, ok := f.certificates[certificateID]
	if !ok {
		return outbound.ErrNotFound
	}
	kept := c.WorkerIDs[:0]
	for _, id := range c.WorkerIDs {
		if id != workerID {
			kept = append(kept, id)
		}
	}
	c.WorkerIDs = kept
	return nil
}

type fakePlanningRepo struct {
	tasks      map[string]*entity.Task
	milestones map[string]*entity.Milestone
}

func newFakePlanningRepo() *fakePlanningRepo {
	return &fakePlanningRepo{tasks: map[string]*entity.Task{}, milestones: map[string]*entity.Milestone{}}
}

func (f *fakePlanningRepo) CreateTask(_ context.Context, t *entity.Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakePlanningRepo) FindTaskByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakePlanningRepo) FindTasks(context.Context, outbound.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakePlanningRepo) UpdateTask(_ context.Context, t *entity.Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakePlanningRepo) DeleteTask(_ context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakePlanningRepo) CreateMilestone(_ context.Context, m *entity.Milestone) error {
	f.milestones[m.ID] = m
	return nil
}

func (f *fakePlanningRepo) FindMilestoneByID(_ context.Context, id string) (*entity.Milestone, error) {
	m, ok := f.milestones[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakePlanningRepo) FindMilestones(context.Context, outbound.MilestoneFilter) ([]*entity.Milestone, error) {
	var out []*entity.Milestone
	for _, m := range f.milestones {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetDate.Before(out[j].TargetDate) })
	return out, nil
}

func (f *fakePlanningRepo) UpdateMilestone(_ context.Context, m *entity.Milestone) error {
	f.milestones[m.ID] = m
	return nil
}

func (f *fakePlanningRepo) DeleteMilestone(_ context.Context, id string) error {
	delete(f.milestones, id)
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	records []*entity.AuditRecord
	filter  outbound.AuditFilter
	since   time.Time
	counts  map[entity.AuditAction]int
}

func (f *fakeAuditRepo) Append(_ context.Context, r *entity.AuditRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, r)
	return nil
}

func (f *fakeAuditRepo) Find(_ context.Context, filter outbound.AuditFilter) ([]*entity.AuditRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
	return f.records, nil
}

func (f *fakeAuditRepo) CountByAction(_ context.Context, _ string, since time.Time) (map[entity.AuditAction]int, error) {
	f.since = since
	return f.counts, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindAll(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := f.FindByEmail(ctx, email)
	return u != nil, nil
}

// fakePasswordService "hashes" by prefixing.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(password, hash string) (bool, error) {
	if !strings.HasPrefix(hash, "hashed:") {
		return false, errors.New("corrupt hash")
	}
	return hash == "hashed:"+password, nil
}

type fakeTokenService struct {
	issued []outbound.TokenClaims
}

func (f *fakeTokenService) GenerateAccessToken(claims outbound.TokenClaims) (string, error) {
	f.issued = append(f.issued, claims)
	return "token-for-" + claims.UserID, nil
}

func (f *fakeTokenService) ValidateAccessToken(string) (*outbound.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type fakeReportRepo struct {
	projects    []outbound.ProjectStats
	crews       []outbound.CrewStats
	assignments []outbound.WorkerAssignment
	stock       []outbound.MaterialStock
}

func (f *fakeReportRepo) ProjectStats(context.Context) ([]outbound.ProjectStats, error) {
	return f.projects, nil
}

func (f *fakeReportRepo) ProjectStatsByID(_ context.Context, id string) (*outbound.ProjectStats, error) {
	for _, p := range f.projects {
		if p.ProjectID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, outbound.ErrNotFound
}

func (f *fakeReportRepo) CrewStatsByProject(context.Context, string) ([]outbound.CrewStats, error) {
	return f.crews, nil
}

func (f *fakeReportRepo) WorkerAssignments(context.Context, string) ([]outbound.WorkerAssignment, error) {
	return f.assignments, nil
}

func (f *fakeReportRepo) MaterialStock(context.Context) ([]outbound.MaterialStock, error) {
	return f.stock, nil
}
