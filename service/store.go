package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/TahoorBR/LegalAdvisor/config"
	"github.com/TahoorBR/LegalAdvisor/model"
)

// AnalysisStore is an in-memory store of completed analyses, used to back the
// per-tenant history endpoints. In production, this should be replaced with a
// database.
type AnalysisStore struct {
	analyses    map[string]*model.Analysis
	mu          sync.RWMutex
	maxAnalyses int // Maximum analyses to keep, 0 = unlimited
}

// NewAnalysisStore creates a store bounded by cfg.MaxAnalyses.
func NewAnalysisStore(cfg *config.StoreConfig) *AnalysisStore {
	maxAnalyses := cfg.MaxAnalyses
	if maxAnalyses < 0 {
		maxAnalyses = 0
	}
	return &AnalysisStore{
		analyses:    make(map[string]*model.Analysis),
		maxAnalyses: maxAnalyses,
	}
}

func (s *AnalysisStore) Save(analysis *model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis.UpdatedAt = time.Now()
	s.analyses[analysis.ID] = analysis

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

func (s *AnalysisStore) Get(id string) *model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analyses[id]
}

// GetByTenant returns a tenant's analyses, newest first.
func (s *AnalysisStore) GetByTenant(tenant string) []*model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Analysis
	for _, a := range s.analyses {
		if a.Tenant == tenant {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *AnalysisStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
}

// cleanupIfNeeded removes oldest analyses if store exceeds maxAnalyses
// Must be called with lock held
func (s *AnalysisStore) cleanupIfNeeded() {
	if s.maxAnalyses <= 0 {
		return // Unlimited
	}

	if len(s.analyses) <= s.maxAnalyses {
		return
	}

	analyses := make([]*model.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		analyses = append(analyses, a)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.Before(analyses[j].CreatedAt)
	})

	removeCount := len(analyses) - s.maxAnalyses
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old analysis",
			"analysis_id", analyses[i].ID,
			"created_at", analyses[i].CreatedAt,
		)
		delete(s.analyses, analyses[i].ID)
	}
}

// Count returns the number of analyses in the store
func (s *AnalysisStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}
