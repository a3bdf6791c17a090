package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-scheduler/internal/session/repository"
	"meeting-scheduler/pkg/googleauth"
	pkgLog "meeting-scheduler/pkg/log"
)

const (
	// expiryMargin is how far ahead of access-token expiry a refresh kicks in.
	expiryMargin = 5 * time.Minute

	// pendingTTL bounds how long an initiated authorization may stay open.
	pendingTTL = 10 * time.Minute

	maxPendingAuthorizations = 512
)

// pendingAuth is the scratch entry created by InitiateAuthorization and
// consumed by CompleteAuthorization, keyed by state.
type pendingAuth struct {
	UserID   string
	Verifier string
}

type implUseCase struct {
	l        pkgLog.Logger
	provider *googleauth.Client
	repo     repository.TokenRepository

	// pending holds state → PKCE verifier with TTL, so an abandoned consent
	// screen cannot be completed later.
	pending *expirable.LRU[string, pendingAuth]

	// refreshLocks serializes read-then-refresh per user so concurrent
	// callers share one refresh instead of racing the provider.
	refreshLocks sync.Map // userID → *sync.Mutex
}

// New creates a new session UseCase instance.
func New(l pkgLog.Logger, provider *googleauth.Client, repo repository.TokenRepository) *implUseCase {
	return &implUseCase{
		l:        l,
		provider: provider,
		repo:     repo,
		pending:  expirable.NewLRU[string, pendingAuth](maxPendingAuthorizations, nil, pendingTTL),
	}
}

func (uc *implUseCase) userLock(userID string) *sync.Mutex {
	mu, _ := uc.refreshLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
