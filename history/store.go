package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"app/models"
)

// RetentionDays is the rolling window of daily snapshots kept per
// product key. Dates beyond it are evicted oldest-first on every write.
const RetentionDays = 30

// History maps product key -> ISO date (YYYY-MM-DD) -> platform -> price.
// Only platforms with a positive price on a given date are present;
// absent entries are never materialized as zero.
type History map[string]map[string]map[string]float64

// ErrWriteFailed tags a persistence failure on Record. The in-memory
// state is already updated when this is returned, so callers can keep
// serving the current session and surface a warning instead of failing.
var ErrWriteFailed = errors.New("history write failed")

// LoadStatus reports how the initial load from durable storage went.
type LoadStatus int

const (
	// LoadOK means the stored blob was read and parsed.
	LoadOK LoadStatus = iota
	// LoadEmpty means no blob was stored yet.
	LoadEmpty
	// LoadCorrupt means a blob existed but did not parse; the store
	// starts empty and the stale blob is overwritten on the next write.
	LoadCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadEmpty:
		return "empty"
	case LoadCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Blob is the durable storage medium behind a Store: a single slot
// holding the JSON-serialized history, read once at startup and
// overwritten wholesale on every mutation. Read returns (nil, nil)
// when nothing is stored yet.
type Blob interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Store owns the price history for all product keys. All access goes
// through its methods; callers never touch the underlying Blob.
type Store struct {
	mu   sync.Mutex
	blob Blob
	data History
}

// Open loads the history from blob. It never fails: an absent slot
// yields an empty store, and a corrupt blob yields an empty store with
// a LoadCorrupt status so the caller can decide to warn.
func Open(ctx context.Context, blob Blob) (*Store, LoadStatus) {
	s := &Store{blob: blob, data: History{}}

	raw, err := blob.Read(ctx)
	if err != nil {
		log.Printf("Error reading price history, starting empty: %v", err)
		return s, LoadCorrupt
	}
	if len(raw) == 0 {
		return s, LoadEmpty
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("Stored price history is corrupt, starting empty: %v", err)
		s.data = History{}
		return s, LoadCorrupt
	}
	if s.data == nil {
		s.data = History{}
	}
	return s, LoadOK
}

// Today returns the current UTC calendar date in ISO format, the form
// used for every date key in the store.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// RecordToday records the positive prices of every product under the
// current UTC date.
func (s *Store) RecordToday(ctx context.Context, products []models.Product) error {
	return s.Record(ctx, products, Today())
}

// Record registers date for every keyed product and writes its
// positive platform prices under it, overwriting any prior value for
// the same date and platform. The date is registered even when no
// platform is available, so it counts as seen for the trend axis and
// for retention. Afterwards every key is pruned to its RetentionDays
// most recent dates and the whole mapping is persisted back to the
// blob. A persistence failure is returned wrapped in ErrWriteFailed
// after the in-memory state is updated.
func (s *Store) Record(ctx context.Context, products []models.Product, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, product := range products {
		key := product.Key()
		if key == "" {
			continue
		}
		if s.data[key] == nil {
			s.data[key] = map[string]map[string]float64{}
		}
		if s.data[key][date] == nil {
			s.data[key][date] = map[string]float64{}
		}
		for _, platform := range models.Platforms {
			entry, ok := product.Price(platform)
			if !ok {
				continue
			}
			s.data[key][date][platform] = entry.Price
		}
	}

	s.prune()

	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := s.blob.Write(ctx, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// prune evicts the oldest dates of any key holding more than
// RetentionDays of them. ISO dates sort lexicographically in
// chronological order. Caller holds s.mu.
func (s *Store) prune() {
	for key, byDate := range s.data {
		if len(byDate) <= RetentionDays {
			continue
		}
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates[:len(dates)-RetentionDays] {
			delete(s.data[key], date)
		}
	}
}

// Dates returns every date recorded for key, ascending.
func (s *Store) Dates(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make([]string, 0, len(s.data[key]))
	for date := range s.data[key] {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// ProductHistory returns a copy of everything recorded for key, as
// date -> platform -> price. The copy is safe to use after the store
// mutates.
func (s *Store) ProductHistory(key string) map[string]map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]map[string]float64, len(s.data[key]))
	for date, byPlatform := range s.data[key] {
		prices := make(map[string]float64, len(byPlatform))
		for platform, price := range byPlatform {
			prices[platform] = price
		}
		out[date] = prices
	}
	return out
}

// Series returns, for each requested platform, the prices recorded for
// key on the requested dates. Dates with no recorded price for a
// platform are simply absent from that platform's map.
func (s *Store) Series(key string, platforms, dates []string) map[string]map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]map[string]float64, len(platforms))
	for _, platform := range platforms {
		points := map[string]float64{}
		for _, date := range dates {
			if price, ok := s.data[key][date][platform]; ok {
				points[date] = price
			}
		}
		out[platform] = points
	}
	return out
}
