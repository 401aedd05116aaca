package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const spamOnlyMessage = "This number is not registered but has been reported as spam."

// LookupService resolves callers by name or number.
type LookupService struct {
	store       store.Store
	spam        *SpamService
	fanoutLimit int
	metrics     *metrics.Metrics
}

// NewLookupService caps concurrent tally fetches per name search at
// fanoutLimit (minimum 1).
func NewLookupService(st store.Store, spam *SpamService, fanoutLimit int, m *metrics.Metrics) *LookupService {
	if fanoutLimit < 1 {
		fanoutLimit = 1
	}
	return &LookupService{store: st, spam: spam, fanoutLimit: fanoutLimit, metrics: m}
}

// ResolveByName returns accounts whose name starts with query followed by
// accounts that only contain it, each with its spam tally attached.
func (s *LookupService) ResolveByName(ctx context.Context, query string, _ uuid.UUID) ([]dto.NameResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLookupLatency("name", time.Since(start)) }()

	if strings.TrimSpace(query) == "" {
		return nil, required("q", `A search query "q" is required.`)
	}

	prefix, err := s.store.AccountsByNamePrefix(ctx, query)
	if err != nil {
		return nil, resolutionError("search names by prefix", err)
	}
	infix, err := s.store.AccountsByNameInfix(ctx, query)
	if err != nil {
		return nil, resolutionError("search names by substring", err)
	}

	candidates := make([]models.Account, 0, len(prefix)+len(infix))
	candidates = append(candidates, prefix...)
	candidates = append(candidates, infix...)

	results, err := s.attachTallies(ctx, candidates)
	if err != nil {
		return nil, err
	}

	outcome := "hit"
	if len(results) == 0 {
		outcome = "empty"
	}
	s.metrics.IncrementOutcome("name", outcome)
	return results, nil
}

// attachTallies fetches tallies concurrently and writes each into its
// candidate's slot, so output order is the ranking order.
func (s *LookupService) attachTallies(ctx context.Context, candidates []models.Account) ([]dto.NameResult, error) {
	results := make([]dto.NameResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for i, account := range candidates {
		g.Go(func() error {
			tally, err := s.spam.Tally(gctx, account.Number)
			if err != nil {
				return err
			}
			results[i] = dto.NameResult{
				Name:      account.Name,
				Number:    account.Number,
				SpamCount: tally,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ResolveByNumber walks the priority chain: registered account, then every
// owner's contact entries, then bare spam reports. The tally is computed
// once up front and shared by whichever branch answers.
func (s *LookupService) ResolveByNumber(ctx context.Context, number string, callerID uuid.UUID) ([]dto.NumberResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLookupLatency("number", time.Since(start)) }()

	if strings.TrimSpace(number) == "" {
		return nil, required("num", `A search query "num" is required.`)
	}

	tally, err := s.spam.Tally(ctx, number)
	if err != nil {
		return nil, err
	}

	account, err := s.store.FindAccountByNumber(ctx, number)
	switch {
	case err == nil:
		result, err := s.registeredResult(ctx, account, callerID, tally)
		if err != nil {
			return nil, err
		}
		s.metrics.IncrementOutcome("number", "registered")
		return []dto.NumberResult{result}, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, resolutionError("find account by number", err)
	}

	contacts, err := s.store.ContactsByNumber(ctx, number)
	if err != nil {
		return nil, resolutionError("find contacts by number", err)
	}
	if len(contacts) > 0 {
		results := make([]dto.NumberResult, len(contacts))
		for i, c := range contacts {
			results[i] = dto.NumberResult{Name: c.Name, Number: number, SpamCount: tally}
		}
		s.metrics.IncrementOutcome("number", "contacts")
		return results, nil
	}

	if tally > 0 {
		s.metrics.IncrementOutcome("number", "spam_only")
		return []dto.NumberResult{{Number: number, SpamCount: tally, Message: spamOnlyMessage}}, nil
	}

	s.metrics.IncrementOutcome("number", "not_found")
	return nil, ErrNotFound
}

// registeredResult applies the disclosure rule: the email is shown only when
// the caller holds the account's number in their own contacts.
func (s *LookupService) registeredResult(ctx context.Context, account *models.Account, callerID uuid.UUID, tally int64) (dto.NumberResult, error) {
	result := dto.NumberResult{
		Name:      account.Name,
		Number:    account.Number,
		SpamCount: tally,
	}
	if !account.HasEmail() {
		return result, nil
	}

	known, err := s.store.HasContact(ctx, callerID, account.Number)
	if err != nil {
		return dto.NumberResult{}, resolutionError("check caller contacts", err)
	}
	if known {
		email := *account.Email
		result.Email = &email
	}
	return result, nil
}
