package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/google/uuid"
)

var errStoreDown = errors.New("store unavailable")

// failingStore fails the operations whose names are set in failOn.
type failingStore struct {
	*store.MemoryStore
	failOn map[string]bool
}

func newFailingStore(ops ...string) *failingStore {
	f := &failingStore{MemoryStore: store.NewMemoryStore(), failOn: map[string]bool{}}
	for _, op := range ops {
		f.failOn[op] = true
	}
	return f
}

func (f *failingStore) CountSpamReports(ctx context.Context, number string) (int64, error) {
	if f.failOn["count"] {
		return 0, errStoreDown
	}
	return f.MemoryStore.CountSpamReports(ctx, number)
}

func (f *failingStore) FindAccountByNumber(ctx context.Context, number string) (*models.Account, error) {
	if f.failOn["find"] {
		return nil, errStoreDown
	}
	return f.MemoryStore.FindAccountByNumber(ctx, number)
}

func (f *failingStore) AccountsByNamePrefix(ctx context.Context, q string) ([]models.Account, error) {
	if f.failOn["prefix"] {
		return nil, errStoreDown
	}
	return f.MemoryStore.AccountsByNamePrefix(ctx, q)
}

func (f *failingStore) CreateContact(ctx context.Context, c *models.Contact) error {
	if f.failOn["contact"] {
		return errStoreDown
	}
	return f.MemoryStore.CreateContact(ctx, c)
}

// slowCountStore delays tally counts so later candidates finish first, and
// records the peak number of concurrent counts.
type slowCountStore struct {
	*store.MemoryStore
	delays   map[string]time.Duration
	inflight atomic.Int32
	mu       sync.Mutex
	peak     int32
}

func (s *slowCountStore) CountSpamReports(ctx context.Context, number string) (int64, error) {
	n := s.inflight.Add(1)
	defer s.inflight.Add(-1)

	s.mu.Lock()
	if n > s.peak {
		s.peak = n
	}
	s.mu.Unlock()

	time.Sleep(s.delays[number])
	return s.MemoryStore.CountSpamReports(ctx, number)
}

func seedAccount(st store.Store, name, number string, email *string) models.Account {
	a := models.Account{Name: name, Number: number, Password: "hash", Email: email}
	if err := st.CreateAccount(context.Background(), &a); err != nil {
		panic(err)
	}
	return a
}

func seedContact(st store.Store, owner uuid.UUID, name, number string) {
	if err := st.CreateContact(context.Background(), &models.Contact{OwnerID: owner, Name: name, Number: number}); err != nil {
		panic(err)
	}
}

func seedReports(st store.Store, number string, n int) {
	for i := 0; i < n; i++ {
		if err := st.CreateSpamReport(context.Background(), &models.SpamReport{ReporterID: uuid.New(), ReportedNumber: number}); err != nil {
			panic(err)
		}
	}
}

func strPtr(s string) *string { return &s }

// gatedCountStore holds the first CountSpamReports call after it has read
// the count, until release is closed.
type gatedCountStore struct {
	*store.MemoryStore
	counted chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedCountStore() *gatedCountStore {
	return &gatedCountStore{
		MemoryStore: store.NewMemoryStore(),
		counted:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (g *gatedCountStore) CountSpamReports(ctx context.Context, number string) (int64, error) {
	n, err := g.MemoryStore.CountSpamReports(ctx, number)
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.counted)
		<-g.release
	}
	return n, err
}
