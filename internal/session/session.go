// Package session holds the process-lifetime mapping from opaque
// tokens to authenticated identities. Sessions never survive a restart.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnauthenticated = errors.New("unauthenticated")

const sweepInterval = time.Minute

type Identity struct {
	UserID int
	Login  string
}

type entry struct {
	identity Identity
	lastSeen time.Time
}

// Directory is a mutex-guarded token table with a fixed idle TTL.
// Expiry is evaluated lazily on every Authenticate; a background sweep
// additionally evicts idle entries so the table cannot accumulate
// stale sessions between checks.
type Directory struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
	now      func() time.Time
}

func NewDirectory(ttl time.Duration) *Directory {
	return &Directory{
		ttl:      ttl,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Login creates a session for the identity and returns its token.
// Tokens are never reused; an identity may hold any number of
// concurrent sessions.
func (d *Directory) Login(userID int, login string) string {
	token := uuid.NewString()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[token] = &entry{
		identity: Identity{UserID: userID, Login: login},
		lastSeen: d.now(),
	}
	return token
}

// Authenticate resolves a token to its identity. Unknown tokens and
// tokens idle past the TTL fail with ErrUnauthenticated; success
// refreshes the session's last-seen instant.
func (d *Directory) Authenticate(token string) (*Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.sessions[token]
	if !ok {
		return nil, ErrUnauthenticated
	}
	now := d.now()
	if now.Sub(e.lastSeen) > d.ttl {
		delete(d.sessions, token)
		return nil, ErrUnauthenticated
	}
	e.lastSeen = now

	identity := e.identity
	return &identity, nil
}

// Logout removes the session. Removing an absent token is not an error.
func (d *Directory) Logout(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, token)
}

func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sessions)
}

// Start runs the sweep loop until the context is canceled.
func (d *Directory) Start(ctx context.Context) {
	zap.L().Info("session sweeper started")
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping session sweeper")
			return
		case <-ticker.C:
			d.sweep()
		}
	}
}

func (d *Directory) sweep() {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for token, e := range d.sessions {
		if now.Sub(e.lastSeen) > d.ttl {
			delete(d.sessions, token)
		}
	}
}
