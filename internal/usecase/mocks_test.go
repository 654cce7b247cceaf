package usecase

import (
	"context"
	"encoding/json"
	"time"

	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	refs    []user.Ref
	byID    map[uuid.UUID]user.User
	listErr error
}

func (m *mockUserRepo) Create(context.Context, user.User) error { return nil }

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByUsername(context.Context, string) (bool, error) {
	return false, nil
}

func (m *mockUserRepo) List(context.Context) ([]user.Ref, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.refs, nil
}

type mockAssessmentRepo struct {
	latest    map[uuid.UUID]assessment.Assessment
	latestErr map[uuid.UUID]error

	created   []assessment.Assessment
	createErr error
}

func (m *mockAssessmentRepo) Create(_ context.Context, a assessment.Assessment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, a)
	return nil
}

func (m *mockAssessmentRepo) LatestByUser(_ context.Context, userID uuid.UUID) (assessment.Assessment, error) {
	if err, ok := m.latestErr[userID]; ok {
		return assessment.Assessment{}, err
	}
	if a, ok := m.latest[userID]; ok {
		return a, nil
	}
	return assessment.Assessment{}, assessment.ErrNoAssessment
}

// fakeCache is an in-memory AggregateCache storing marshaled JSON, so
// cache hits exercise the same decode path as Redis.
type fakeCache struct {
	data map[string][]byte
	sets int
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	f.hits++
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	f.sets++
	return nil
}

type recordingInvalidator struct {
	calls int
}

func (r *recordingInvalidator) InvalidateAggregates(context.Context) { r.calls++ }

type recordingNotifier struct {
	userIDs []uuid.UUID
}

func (r *recordingNotifier) AssessmentSubmitted(userID uuid.UUID, _ time.Time) {
	r.userIDs = append(r.userIDs, userID)
}
