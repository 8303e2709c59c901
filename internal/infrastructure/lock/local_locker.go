package lock

import (
	"context"
	"sync"

	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
)

var _ ports.Locker = (*LocalLocker)(nil)

// LocalLocker guarda las claves tomadas en memoria del proceso.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalLocker construye el locker en memoria.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

// Acquire no espera: si la clave está tomada devuelve domain.ErrLocked.
func (l *LocalLocker) Acquire(_ context.Context, key string) (ports.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return nil, domain.ErrLocked
	}
	l.held[key] = struct{}{}
	return &localLock{owner: l, key: key}, nil
}

type localLock struct {
	owner *LocalLocker
	key   string
	once  sync.Once
}

// Release es idempotente.
func (k *localLock) Release(context.Context) error {
	k.once.Do(func() {
		k.owner.mu.Lock()
		delete(k.owner.held, k.key)
		k.owner.mu.Unlock()
	})
	return nil
}
