package rest

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hemadri138/veritas-project/config"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	users  []model.User
}

func (f *fakeUsers) Register(_ context.Context, user model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return model.User{}, repository.ErrDuplicateUser
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

type fakeClaims struct {
	mu       sync.Mutex
	claims   []model.Claim
	countErr error
}

func (f *fakeClaims) Create(_ context.Context, author model.Identity, req model.CreateClaimRequest) (model.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claim := model.Claim{
		ID:                  int64(len(f.claims) + 1),
		SourceURL:           req.SourceURL,
		Statement:           req.Statement,
		Status:              model.ClaimStatusPending,
		SubmittedByID:       author.UserID,
		SubmittedByUsername: author.Username,
		CreatedAt:           time.Now(),
	}
	f.claims = append(f.claims, claim)
	return claim, nil
}

func (f *fakeClaims) ListRecent(_ context.Context, limit, offset int) ([]model.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Claim{}
	for i := len(f.claims) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.claims[i])
	}
	return out, nil
}

func (f *fakeClaims) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.claims)), nil
}

func (f *fakeClaims) GetByID(_ context.Context, id int64) (model.Claim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id < 1 || id > int64(len(f.claims)) {
		return model.Claim{}, repository.ErrClaimNotFound
	}
	return f.claims[id-1], nil
}

type fakeVotes struct {
	counts map[int64][]model.VoteCount
	panics bool
}

func (f *fakeVotes) Tally(_ context.Context, claimID int64) (model.VoteTally, error) {
	if f.panics {
		panic("tally exploded")
	}
	return model.TallyVotes(f.counts[claimID]), nil
}

type fakeEvidence struct {
	mu       sync.Mutex
	evidence []model.Evidence
}

func (f *fakeEvidence) Create(_ context.Context, author model.Identity, evidence model.Evidence) (model.Evidence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	evidence.ID = int64(len(f.evidence) + 1)
	evidence.UserID = author.UserID
	evidence.SubmittedByUsername = author.Username
	evidence.SubmittedAt = time.Now()
	f.evidence = append(f.evidence, evidence)
	return evidence, nil
}

// ListForClaim returns nil for claims without evidence, like a careless store would.
func (f *fakeEvidence) ListForClaim(_ context.Context, claimID int64) ([]model.Evidence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Evidence
	for i := len(f.evidence) - 1; i >= 0; i-- {
		if f.evidence[i].ClaimID == claimID {
			out = append(out, f.evidence[i])
		}
	}
	return out, nil
}

type testEnv struct {
	api      *API
	handler  http.Handler
	users    *fakeUsers
	claims   *fakeClaims
	votes    *fakeVotes
	evidence *fakeEvidence
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    &fakeUsers{},
		claims:   &fakeClaims{},
		votes:    &fakeVotes{counts: map[int64][]model.VoteCount{}},
		evidence: &fakeEvidence{},
	}
	env.api = &API{
		Config: &config.Config{
			AppEnv:      "test",
			JwtSecret:   "test-secret",
			JwtExpires:  time.Hour,
			MaxPageSize: 100,
			BcryptCost:  bcrypt.MinCost,
		},
		Users:    env.users,
		Claims:   env.claims,
		Votes:    env.votes,
		Evidence: env.evidence,
	}
	env.handler = env.api.setUpServerHandler()
	return env
}
