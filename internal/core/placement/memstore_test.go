package placement

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type memState struct {
	candidates   map[string]candidate.Candidate
	companies    map[string]company.Company
	apartments   map[string]apartment.Apartment
	employees    map[string]employee.Employee
	assignments  map[string]employee.Assignment
	applications map[string]Application
	notices      map[string]JoiningNotice
	lastNumber   int64
}

func (s memState) clone() memState {
	return memState{
		candidates:   maps.Clone(s.candidates),
		companies:    maps.Clone(s.companies),
		apartments:   maps.Clone(s.apartments),
		employees:    maps.Clone(s.employees),
		assignments:  maps.Clone(s.assignments),
		applications: maps.Clone(s.applications),
		notices:      maps.Clone(s.notices),
		lastNumber:   s.lastNumber,
	}
}

// memStore はトランザクションごとに状態を退避し、エラー時に復元するインメモリストアです。
// トランザクション中はミューテックスを保持するため、並行呼び出しは直列化されます。
type memStore struct {
	mu    sync.Mutex
	state memState

	conflicts     int
	attempts      int
	assignmentErr error
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		candidates:   map[string]candidate.Candidate{},
		companies:    map[string]company.Company{},
		apartments:   map[string]apartment.Apartment{},
		employees:    map[string]employee.Employee{},
		assignments:  map[string]employee.Assignment{},
		applications: map[string]Application{},
		notices:      map[string]JoiningNotice{},
	}}
}

func (s *memStore) deps() Dependencies {
	return Dependencies{
		Candidates:   memCandidates{s},
		Companies:    memCompanies{s},
		Apartments:   memApartments{s},
		Employees:    memEmployees{s},
		Assignments:  memAssignments{s},
		Applications: memApplications{s},
		Notices:      memNotices{s},
		Numbers:      memNumbers{s},
	}
}

func (s *memStore) txManager() TransactionManager {
	return memTxManager{s}
}

type memTxKey struct{}

type memTxManager struct {
	store *memStore
}

func (m memTxManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return m.within(ctx, false, fn)
}

func (m memTxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return m.within(ctx, true, fn)
}

func (m memTxManager) within(ctx context.Context, write bool, fn func(context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snapshot := m.store.state.clone()
	if write {
		m.store.attempts++
	}
	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.store.state = snapshot
		return err
	}
	if write && m.store.conflicts > 0 {
		m.store.conflicts--
		m.store.state = snapshot
		return fmt.Errorf("%w: could not serialize access due to concurrent update", ErrConflict)
	}
	return nil
}

// 以下のシード・参照用ヘルパーはトランザクション外から呼び出します。

func (s *memStore) putCandidate(status candidate.Status, profile candidate.Profile) candidate.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := candidate.Candidate{ID: uuid.NewString(), Profile: profile, Status: status, CreatedBy: "seed"}
	s.state.candidates[c.ID] = c
	return c
}

func (s *memStore) putCompany(status company.Status) company.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := company.Company{ID: uuid.NewString(), Name: "トヨタ紡織 豊橋工場", Code: uuid.NewString()[:8], Status: status}
	s.state.companies[c.ID] = c
	return c
}

func (s *memStore) putApartment(capacity, occupants int) apartment.Apartment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := apartment.Apartment{ID: uuid.NewString(), Name: "社宅", Capacity: capacity, CurrentOccupants: occupants, IsActive: true}
	s.state.apartments[a.ID] = a
	return a
}

func (s *memStore) putNotice(n JoiningNotice) JoiningNotice {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = uuid.NewString()
	s.state.notices[n.ID] = n
	return n
}

func (s *memStore) candidate(id string) candidate.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.candidates[id]
}

func (s *memStore) notice(id string) JoiningNotice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.notices[id]
}

func (s *memStore) apartment(id string) apartment.Apartment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.apartments[id]
}

func (s *memStore) employeesByCandidate(candidateID string) []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []employee.Employee
	for _, e := range s.state.employees {
		if e.CandidateID != nil && *e.CandidateID == candidateID {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) employeeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.employees)
}

func (s *memStore) assignmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.assignments)
}

type memCandidates struct{ s *memStore }

func (r memCandidates) FindByID(_ context.Context, id string) (*candidate.Candidate, error) {
	c, ok := r.s.state.candidates[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	return &c, nil
}

func (r memCandidates) FindByIDForUpdate(ctx context.Context, id string) (*candidate.Candidate, error) {
	return r.FindByID(ctx, id)
}

func (r memCandidates) Update(_ context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	if _, ok := r.s.state.candidates[c.ID]; !ok {
		return nil, candidate.ErrCandidateNotFound
	}
	r.s.state.candidates[c.ID] = *c
	out := *c
	return &out, nil
}

type memCompanies struct{ s *memStore }

func (r memCompanies) FindByID(_ context.Context, id string) (*company.Company, error) {
	c, ok := r.s.state.companies[id]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	return &c, nil
}

type memApartments struct{ s *memStore }

func (r memApartments) FindByID(_ context.Context, id string) (*apartment.Apartment, error) {
	a, ok := r.s.state.apartments[id]
	if !ok {
		return nil, apartment.ErrApartmentNotFound
	}
	return &a, nil
}

func (r memApartments) Occupy(_ context.Context, id string) (*apartment.Apartment, error) {
	a, ok := r.s.state.apartments[id]
	if !ok {
		return nil, apartment.ErrApartmentNotFound
	}
	if !a.HasVacancy() {
		return nil, apartment.ErrNoVacancy
	}
	a.CurrentOccupants++
	r.s.state.apartments[id] = a
	return &a, nil
}

type memEmployees struct{ s *memStore }

func (r memEmployees) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	for _, existing := range r.s.state.employees {
		if existing.EmployeeNumber == e.EmployeeNumber {
			return nil, employee.ErrEmployeeNumberExists
		}
		if existing.CandidateID != nil && e.CandidateID != nil && *existing.CandidateID == *e.CandidateID {
			return nil, employee.ErrCandidateAlreadyEmployed
		}
	}
	out := *e
	out.ID = uuid.NewString()
	r.s.state.employees[out.ID] = out
	return &out, nil
}

func (r memEmployees) FindByCandidateID(_ context.Context, candidateID string) (*employee.Employee, error) {
	for _, e := range r.s.state.employees {
		if e.CandidateID != nil && *e.CandidateID == candidateID {
			return &e, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

type memAssignments struct{ s *memStore }

func (r memAssignments) CreateAssignment(_ context.Context, a employee.Assignment) (employee.Assignment, error) {
	if r.s.assignmentErr != nil {
		return nil, r.s.assignmentErr
	}
	if _, ok := r.s.state.assignments[a.AssignedEmployeeID()]; ok {
		return nil, employee.ErrAssignmentAlreadyExists
	}

	var stored employee.Assignment
	switch v := a.(type) {
	case *employee.HakenAssignment:
		clone := *v
		clone.ID = uuid.NewString()
		stored = &clone
	case *employee.UkeoiAssignment:
		clone := *v
		clone.ID = uuid.NewString()
		stored = &clone
	default:
		return nil, employee.ErrInvalidEmploymentType
	}
	r.s.state.assignments[a.AssignedEmployeeID()] = stored
	return stored, nil
}

type memApplications struct{ s *memStore }

func (r memApplications) Create(_ context.Context, a *Application) (*Application, error) {
	if a.Status == ApplicationPending {
		for _, existing := range r.s.state.applications {
			if existing.CandidateID == a.CandidateID && existing.Status == ApplicationPending {
				return nil, ErrPendingApplicationExists
			}
		}
	}
	out := *a
	out.ID = uuid.NewString()
	r.s.state.applications[out.ID] = out
	return &out, nil
}

func (r memApplications) Update(_ context.Context, a *Application) (*Application, error) {
	if _, ok := r.s.state.applications[a.ID]; !ok {
		return nil, ErrApplicationNotFound
	}
	r.s.state.applications[a.ID] = *a
	out := *a
	return &out, nil
}

func (r memApplications) FindByID(_ context.Context, id string) (*Application, error) {
	a, ok := r.s.state.applications[id]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	return &a, nil
}

func (r memApplications) FindByIDForUpdate(ctx context.Context, id string) (*Application, error) {
	return r.FindByID(ctx, id)
}

func (r memApplications) List(_ context.Context, filter ListApplicationsFilter) ([]*Application, string, error) {
	var filtered []*Application
	for _, a := range r.s.state.applications {
		if filter.CandidateID != nil && a.CandidateID != *filter.CandidateID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out := a
		filtered = append(filtered, &out)
	}
	slices.SortFunc(filtered, func(a, b *Application) int {
		return cmp.Or(b.PresentedAt.Compare(a.PresentedAt), cmp.Compare(a.ID, b.ID))
	})
	return paginate(filtered, filter.Limit, filter.Offset)
}

type memNotices struct{ s *memStore }

func (r memNotices) Create(_ context.Context, n *JoiningNotice) (*JoiningNotice, error) {
	out := *n
	out.ID = uuid.NewString()
	r.s.state.notices[out.ID] = out
	return &out, nil
}

func (r memNotices) Update(_ context.Context, n *JoiningNotice) (*JoiningNotice, error) {
	if _, ok := r.s.state.notices[n.ID]; !ok {
		return nil, ErrNoticeNotFound
	}
	r.s.state.notices[n.ID] = *n
	out := *n
	return &out, nil
}

func (r memNotices) FindByID(_ context.Context, id string) (*JoiningNotice, error) {
	n, ok := r.s.state.notices[id]
	if !ok {
		return nil, ErrNoticeNotFound
	}
	return &n, nil
}

func (r memNotices) FindByIDForUpdate(ctx context.Context, id string) (*JoiningNotice, error) {
	return r.FindByID(ctx, id)
}

func (r memNotices) List(_ context.Context, filter ListNoticesFilter) ([]*JoiningNotice, string, error) {
	var filtered []*JoiningNotice
	for _, n := range r.s.state.notices {
		if filter.CandidateID != nil && n.CandidateID != *filter.CandidateID {
			continue
		}
		if filter.Status != nil && n.Status != *filter.Status {
			continue
		}
		out := n
		filtered = append(filtered, &out)
	}
	slices.SortFunc(filtered, func(a, b *JoiningNotice) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return paginate(filtered, filter.Limit, filter.Offset)
}

type memNumbers struct{ s *memStore }

func (r memNumbers) NextEmployeeNumber(context.Context) (int64, error) {
	r.s.state.lastNumber++
	return r.s.state.lastNumber, nil
}

func paginate[T any](items []T, limit, offset int) ([]T, string, error) {
	if offset > len(items) {
		return []T{}, "", nil
	}
	end := min(offset+limit, len(items))
	var nextToken string
	if end < len(items) {
		nextToken = strconv.Itoa(end)
	}
	return items[offset:end], nextToken, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
