package book

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-process Repository. It is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64
}

// NewMemoryRepo returns a MemoryRepo seeded with the given books. Seed entries
// without an id are assigned one.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	repo := &MemoryRepo{
		books:  make(map[int64]Book, len(seed)),
		nextID: 1,
	}
	for _, b := range seed {
		if b.ID >= repo.nextID {
			repo.nextID = b.ID + 1
		}
	}
	for _, b := range seed {
		if b.ID <= 0 {
			b.ID = repo.nextID
			repo.nextID++
		}
		repo.books[b.ID] = b
	}
	return repo
}

// ListAll returns all books in ascending id order.
func (r *MemoryRepo) ListAll(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Create(_ context.Context, b *Book) (bool, error) {
	if !Valid(b) {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = *b
	return true, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	return true, nil
}

func (r *MemoryRepo) Update(_ context.Context, b *Book) (bool, error) {
	if b == nil || !ValidID(b.ID) || !Valid(b) {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; !ok {
		return false, nil
	}
	r.books[b.ID] = *b
	return true, nil
}
