package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
)

// MemoryStore keeps all state in process memory. It is the default backend:
// state lives for the process lifetime and is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]model.User
	reports map[string]model.HazardReport
	clock   clockwork.Clock
}

var _ Store = (*MemoryStore)(nil)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the store's clock. Tests use a fake clock to make
// creation-time ordering deterministic.
func WithClock(c clockwork.Clock) MemoryOption {
	return func(s *MemoryStore) { s.clock = c }
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		users:   make(map[string]model.User),
		reports: make(map[string]model.HazardReport),
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetUser returns the user with the given id, or ErrNotFound.
func (s *MemoryStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByEmail returns the user registered with the given email, or
// ErrNotFound. Linear scan; the email-uniqueness invariant is enforced by the
// service before CreateUser is called, so at most one user matches.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser assigns a fresh id and creation timestamp and stores the user.
func (s *MemoryStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = s.clock.Now()
	s.users[user.ID] = *user
	return nil
}

// CreateHazardReport assigns a fresh id and creation timestamp and stores the
// report. Owner existence is the service's responsibility.
func (s *MemoryStore) CreateHazardReport(ctx context.Context, report *model.HazardReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = uuid.NewString()
	report.CreatedAt = s.clock.Now()
	s.reports[report.ID] = *report
	return nil
}

// ListHazardReports returns all reports, most recent first.
func (s *MemoryStore) ListHazardReports(ctx context.Context) ([]model.HazardReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]model.HazardReport, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r)
	}
	sortByCreatedDesc(reports)
	return reports, nil
}

// ListHazardReportsByUser returns the given user's reports, most recent
// first. An unknown user and a user with no reports both yield an empty
// slice.
func (s *MemoryStore) ListHazardReportsByUser(ctx context.Context, userID string) ([]model.HazardReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]model.HazardReport, 0)
	for _, r := range s.reports {
		if r.UserID == userID {
			reports = append(reports, r)
		}
	}
	sortByCreatedDesc(reports)
	return reports, nil
}

func sortByCreatedDesc(reports []model.HazardReport) {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}
