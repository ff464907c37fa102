package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"mybalance/internal/models"
	"mybalance/internal/repository"
)

type fakeLedger[T models.Record] struct {
	mu      sync.Mutex
	records map[int64]T
	nextID  int64
	err     error
	deleted []int64
}

func newFakeLedger[T models.Record]() *fakeLedger[T] {
	return &fakeLedger[T]{records: make(map[int64]T)}
}

func (f *fakeLedger[T]) GetByID(_ context.Context, id int64) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	if f.err != nil {
		return zero, f.err
	}
	rec, ok := f.records[id]
	if !ok {
		return zero, repository.ErrNotFound
	}
	return rec, nil
}

func (f *fakeLedger[T]) ListByUser(_ context.Context, userID int64) ([]T, error) {
	return f.filter(userID, func(time.Time) bool { return true })
}

func (f *fakeLedger[T]) ListByUserAndDateRange(_ context.Context, userID int64, start, end time.Time) ([]T, error) {
	w := models.Window{Start: start, End: end}
	return f.filter(userID, w.Contains)
}

func (f *fakeLedger[T]) filter(userID int64, keep func(time.Time) bool) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []T
	for _, rec := range f.records {
		if rec.Base().UserID == userID && keep(rec.Base().Date) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Base(), out[j].Base()
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (f *fakeLedger[T]) Create(_ context.Context, rec T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	rec.Base().ID = f.nextID
	f.records[f.nextID] = rec
	return nil
}

func (f *fakeLedger[T]) Update(_ context.Context, rec T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.records[rec.Base().ID]; !ok {
		return repository.ErrNotFound
	}
	f.records[rec.Base().ID] = rec
	return nil
}

func (f *fakeLedger[T]) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.records, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
	// createErr is returned by Create after the existence check passes.
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[models.NormalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[models.NormalizeEmail(email)]
	return ok, nil
}
