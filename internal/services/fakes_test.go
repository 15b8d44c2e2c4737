package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"routeplanner/internal/models/db_models"
	"routeplanner/internal/models/request_models"
)

type mockAIClient struct {
	mock.Mock
}

func (m *mockAIClient) IsAvailable() bool {
	return m.Called().Bool(0)
}

func (m *mockAIClient) Generate(ctx context.Context, req request_models.ItineraryRequest, dayCount int) AIResult {
	return m.Called(ctx, req, dayCount).Get(0).(AIResult)
}

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[uuid.UUID]db_models.TripPlan
}

func newFakePlanRepo(plans ...db_models.TripPlan) *fakePlanRepo {
	r := &fakePlanRepo{plans: map[uuid.UUID]db_models.TripPlan{}}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *db_models.TripPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakePlanRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.TripPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePlanRepo) FindDetailById(ctx context.Context, id uuid.UUID) (*db_models.TripPlan, error) {
	return r.FindById(ctx, id)
}

func (r *fakePlanRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TripPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []db_models.TripPlan{}
	for _, p := range r.plans {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *fakePlanRepo) ListLatest(ctx context.Context, limit int) ([]db_models.TripPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]db_models.TripPlan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePlanRepo) DeleteWithDays(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

type reactionKey struct {
	user       uuid.UUID
	kind       db_models.ReactionKind
	targetType string
	target     uuid.UUID
}

type fakeReactionRepo struct {
	mu   sync.Mutex
	rows map[reactionKey]bool
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{rows: map[reactionKey]bool{}}
}

// seed adds n reactions from distinct users.
func (r *fakeReactionRepo) seed(kind db_models.ReactionKind, targetType string, target uuid.UUID, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < n; i++ {
		r.rows[reactionKey{uuid.New(), kind, targetType, target}] = true
	}
}

func (r *fakeReactionRepo) Exists(ctx context.Context, userID uuid.UUID, kind db_models.ReactionKind, targetType string, targetID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[reactionKey{userID, kind, targetType, targetID}], nil
}

func (r *fakeReactionRepo) Add(ctx context.Context, reaction *db_models.ContentReaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[reactionKey{reaction.UserID, reaction.Kind, reaction.TargetType, reaction.TargetID}] = true
	return nil
}

func (r *fakeReactionRepo) Remove(ctx context.Context, userID uuid.UUID, kind db_models.ReactionKind, targetType string, targetID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, reactionKey{userID, kind, targetType, targetID})
	return nil
}

func (r *fakeReactionRepo) CountByTarget(ctx context.Context, kind db_models.ReactionKind, targetType string, targetID uuid.UUID) (int64, error) {
	counts, _ := r.CountByTargets(ctx, kind, targetType, []uuid.UUID{targetID})
	return counts[targetID], nil
}

func (r *fakeReactionRepo) CountByTargets(ctx context.Context, kind db_models.ReactionKind, targetType string, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[uuid.UUID]bool{}
	for _, id := range targetIDs {
		wanted[id] = true
	}
	out := map[uuid.UUID]int64{}
	for k := range r.rows {
		if k.kind == kind && k.targetType == targetType && wanted[k.target] {
			out[k.target]++
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]db_models.Account
}

func newFakeAccountRepo(accounts ...db_models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: map[string]db_models.Account{}}
	for _, a := range accounts {
		r.accounts[a.ID.String()] = a
	}
	return r
}

func (r *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.ID.String()] = *account
	return nil
}

func (r *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}
