package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"petclinic/internal/platform/logger"

	"github.com/google/uuid"
)

const flashCookie = "petclinic_flash"

// Flash es el mensaje que sobrevive al redirect-after-post.
type Flash struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (f Flash) Empty() bool { return f.Message == "" && f.Error == "" }

type FlashStore interface {
	Put(ctx context.Context, id string, f Flash, ttl time.Duration) error
	// Pop devuelve y borra el flash pendiente.
	Pop(ctx context.Context, id string) (Flash, bool, error)
}

type flashKey struct{}

// FlashFrom devuelve el flash leído por el middleware para este request.
func FlashFrom(ctx context.Context) (Flash, bool) {
	f, ok := ctx.Value(flashKey{}).(Flash)
	return f, ok
}

// Flasher asocia flashes al navegador mediante una cookie con un uuid.
type Flasher struct {
	store FlashStore
	ttl   time.Duration
	log   logger.Logger
}

func NewFlasher(store FlashStore, ttl time.Duration, log logger.Logger) *Flasher {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Flasher{store: store, ttl: ttl, log: log}
}

func (f *Flasher) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(flashCookie)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		fl, ok, err := f.store.Pop(r.Context(), c.Value)
		if err != nil {
			// Sin flash la página se muestra igual.
			f.log.Warn("flash pop failed", map[string]any{"err": err})
		}
		if !ok || fl.Empty() {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), flashKey{}, fl)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (f *Flasher) Set(w http.ResponseWriter, r *http.Request, fl Flash) error {
	id := ""
	if c, err := r.Cookie(flashCookie); err == nil {
		if _, perr := uuid.Parse(c.Value); perr == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	if err := f.store.Put(r.Context(), id, fl, f.ttl); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

type memFlash struct {
	flash     Flash
	expiresAt time.Time
}

// MemoryFlashStore es el store por defecto cuando no hay Redis.
type MemoryFlashStore struct {
	mu    sync.Mutex
	items map[string]memFlash
	now   func() time.Time
}

func NewMemoryFlashStore() *MemoryFlashStore {
	return &MemoryFlashStore{
		items: make(map[string]memFlash),
		now:   time.Now,
	}
}

func (s *MemoryFlashStore) Put(_ context.Context, id string, f Flash, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
	s.items[id] = memFlash{flash: f, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryFlashStore) Pop(_ context.Context, id string) (Flash, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[id]
	if !ok {
		return Flash{}, false, nil
	}
	delete(s.items, id)
	if s.now().After(v.expiresAt) {
		return Flash{}, false, nil
	}
	return v.flash, true, nil
}
