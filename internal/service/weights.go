package service

import (
	"context"
	"log"
	"sync"

	"riskradar/internal/cache"
	"riskradar/internal/model"
	"riskradar/internal/sheets"
)

// TableFetcher retrieves a fresh pathway table from the sheet source.
type TableFetcher interface {
	FetchTable(ctx context.Context, pathway model.Pathway) (*model.PathwayTable, error)
}

// WeightsService supplies question/weight tables per pathway: cached when
// fresh, fetched otherwise, and the built-in fallback when retrieval fails.
// At most one fetch per pathway is in flight at a time.
type WeightsService struct {
	fetcher TableFetcher
	cache   cache.TableCache
	mu      map[model.Pathway]*sync.Mutex
}

// NewWeightsService creates a new weights service
func NewWeightsService(fetcher TableFetcher, tableCache cache.TableCache) *WeightsService {
	mu := make(map[model.Pathway]*sync.Mutex, len(model.Pathways()))
	for _, p := range model.Pathways() {
		mu[p] = &sync.Mutex{}
	}
	return &WeightsService{
		fetcher: fetcher,
		cache:   tableCache,
		mu:      mu,
	}
}

// GetTable returns the table for a pathway. A failed fetch resolves to the
// fallback table and is reported once; it is never fatal. The fallback is
// cached too, so a flaky source is not hammered within the TTL window.
func (s *WeightsService) GetTable(ctx context.Context, pathway model.Pathway) (*model.PathwayTable, error) {
	if table, err := s.cache.Get(ctx, pathway); err != nil {
		log.Printf("weights: cache read for %s failed: %v", pathway, err)
	} else if table != nil {
		return table, nil
	}

	lock, ok := s.mu[pathway]
	if !ok {
		lock = &sync.Mutex{}
	}
	lock.Lock()
	defer lock.Unlock()

	// Another caller may have populated the cache while we waited.
	if table, err := s.cache.Get(ctx, pathway); err == nil && table != nil {
		return table, nil
	}

	table, err := s.fetcher.FetchTable(ctx, pathway)
	if err != nil {
		log.Printf("weights: fetch for %s failed, using fallback table: %v", pathway, err)
		table = sheets.FallbackTable(pathway)
	} else {
		log.Printf("weights: loaded %d weights for %s", len(table.Weights), pathway)
	}

	if err := s.cache.Set(ctx, table); err != nil {
		log.Printf("weights: cache write for %s failed: %v", pathway, err)
	}
	return table, nil
}

// GetQuestions returns the question set for a pathway.
func (s *WeightsService) GetQuestions(ctx context.Context, pathway model.Pathway) ([]model.Question, error) {
	table, err := s.GetTable(ctx, pathway)
	if err != nil {
		return nil, err
	}
	return table.Questions, nil
}

// ClearCache invalidates the cached table for one pathway.
func (s *WeightsService) ClearCache(ctx context.Context, pathway model.Pathway) error {
	return s.cache.Clear(ctx, pathway)
}

// ClearAllCaches invalidates every pathway's cached table.
func (s *WeightsService) ClearAllCaches(ctx context.Context) error {
	return s.cache.ClearAll(ctx)
}
