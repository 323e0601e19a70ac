// Package memory keeps boxes and events in process memory behind the same
// repository ports as the PostgreSQL adapter.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
)

// Store holds committed state. Transactions take the write lock for their
// whole duration and publish staged writes only when the callback succeeds.
type Store struct {
	mu     sync.RWMutex
	boxes  map[string]domain.Box
	events map[string]domain.Event
}

func NewStore() *Store {
	return &Store{
		boxes:  make(map[string]domain.Box),
		events: make(map[string]domain.Event),
	}
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	view := &committedView{store: store}
	return portsrepo.RepositoryProvider{
		BoxRepo:    &boxRepository{view: view},
		EventRepo:  &eventRepository{view: view},
		UnitOfWork: store,
	}
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTxView(s)
	repos := portsrepo.TxRepositories{
		Boxes:  &boxRepository{view: tx},
		Events: &eventRepository{view: tx},
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx.apply()
	return nil
}

// view is the state a repository reads and writes through.
type view interface {
	box(id string) (domain.Box, bool)
	allBoxes() []domain.Box
	putBox(b domain.Box, mustExist bool) bool
	removeBox(id string) bool

	event(id string) (domain.Event, bool)
	allEvents() []domain.Event
	putEvent(e domain.Event, mustExist bool) bool
}

// committedView reads and writes committed state, taking the lock per call.
type committedView struct {
	store *Store
}

func (v *committedView) box(id string) (domain.Box, bool) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	b, ok := v.store.boxes[id]
	return b, ok
}

func (v *committedView) allBoxes() []domain.Box {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	out := make([]domain.Box, 0, len(v.store.boxes))
	for _, b := range v.store.boxes {
		out = append(out, b)
	}
	return out
}

func (v *committedView) putBox(b domain.Box, mustExist bool) bool {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	_, exists := v.store.boxes[b.BoxID]
	if exists != mustExist {
		return false
	}
	v.store.boxes[b.BoxID] = b
	return true
}

func (v *committedView) removeBox(id string) bool {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	if _, ok := v.store.boxes[id]; !ok {
		return false
	}
	delete(v.store.boxes, id)
	return true
}

func (v *committedView) event(id string) (domain.Event, bool) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	e, ok := v.store.events[id]
	return e, ok
}

func (v *committedView) allEvents() []domain.Event {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	out := make([]domain.Event, 0, len(v.store.events))
	for _, e := range v.store.events {
		out = append(out, e)
	}
	return out
}

func (v *committedView) putEvent(e domain.Event, mustExist bool) bool {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	_, exists := v.store.events[e.EventID]
	if exists != mustExist {
		return false
	}
	v.store.events[e.EventID] = e
	return true
}

// txView overlays staged writes on committed state. The store's write lock is
// held by WithinTransaction for as long as a txView is in use. A nil box entry
// marks a staged delete.
type txView struct {
	store  *Store
	boxes  map[string]*domain.Box
	events map[string]*domain.Event
}

func newTxView(s *Store) *txView {
	return &txView{
		store:  s,
		boxes:  make(map[string]*domain.Box),
		events: make(map[string]*domain.Event),
	}
}

func (v *txView) box(id string) (domain.Box, bool) {
	if staged, ok := v.boxes[id]; ok {
		if staged == nil {
			return domain.Box{}, false
		}
		return *staged, true
	}
	b, ok := v.store.boxes[id]
	return b, ok
}

func (v *txView) allBoxes() []domain.Box {
	out := make([]domain.Box, 0, len(v.store.boxes)+len(v.boxes))
	for id, b := range v.store.boxes {
		if _, staged := v.boxes[id]; !staged {
			out = append(out, b)
		}
	}
	for _, staged := range v.boxes {
		if staged != nil {
			out = append(out, *staged)
		}
	}
	return out
}

func (v *txView) putBox(b domain.Box, mustExist bool) bool {
	if _, exists := v.box(b.BoxID); exists != mustExist {
		return false
	}
	v.boxes[b.BoxID] = &b
	return true
}

func (v *txView) removeBox(id string) bool {
	if _, exists := v.box(id); !exists {
		return false
	}
	v.boxes[id] = nil
	return true
}

func (v *txView) event(id string) (domain.Event, bool) {
	if staged, ok := v.events[id]; ok {
		return *staged, true
	}
	e, ok := v.store.events[id]
	return e, ok
}

func (v *txView) allEvents() []domain.Event {
	out := make([]domain.Event, 0, len(v.store.events)+len(v.events))
	for id, e := range v.store.events {
		if _, staged := v.events[id]; !staged {
			out = append(out, e)
		}
	}
	for _, staged := range v.events {
		out = append(out, *staged)
	}
	return out
}

func (v *txView) putEvent(e domain.Event, mustExist bool) bool {
	if _, exists := v.event(e.EventID); exists != mustExist {
		return false
	}
	v.events[e.EventID] = &e
	return true
}

// apply publishes staged writes. Callers must hold the store's write lock.
func (v *txView) apply() {
	for id, staged := range v.boxes {
		if staged == nil {
			delete(v.store.boxes, id)
			continue
		}
		v.store.boxes[id] = *staged
	}
	for id, staged := range v.events {
		v.store.events[id] = *staged
	}
}

func sortBoxes(boxes []domain.Box) {
	sort.Slice(boxes, func(i, j int) bool {
		if !boxes[i].CreatedAt.Equal(boxes[j].CreatedAt) {
			return boxes[i].CreatedAt.Before(boxes[j].CreatedAt)
		}
		return boxes[i].BoxID < boxes[j].BoxID
	})
}

func sortEvents(events []domain.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
		return events[i].EventID < events[j].EventID
	})
}
