package service

import (
	"testing"
	"time"

	"github.com/TahoorBR/LegalAdvisor/config"
	"github.com/TahoorBR/LegalAdvisor/model"
)

func newTestStore(maxAnalyses int) *AnalysisStore {
	return NewAnalysisStore(&config.StoreConfig{MaxAnalyses: maxAnalyses})
}

func TestAnalysisStoreSaveAndGet(t *testing.T) {
	store := newTestStore(100)

	analysis := &model.Analysis{
		ID:        "test-id-1",
		Tenant:    "tenant1",
		Mode:      model.ModeCombined,
		Result:    &model.AnalysisResult{Summary: "A summary."},
		CreatedAt: time.Now(),
	}

	store.Save(analysis)

	retrieved := store.Get("test-id-1")
	if retrieved == nil {
		t.Fatal("Expected to retrieve analysis")
	}
	if retrieved.Result.Summary != "A summary." {
		t.Errorf("Expected summary, got %s", retrieved.Result.Summary)
	}
	if retrieved.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set on save")
	}

	if store.Get("non-existent") != nil {
		t.Error("Expected nil for non-existent analysis")
	}
}

func TestAnalysisStoreGetByTenant(t *testing.T) {
	store := newTestStore(100)

	now := time.Now()
	store.Save(&model.Analysis{ID: "1", Tenant: "tenant1", CreatedAt: now.Add(-2 * time.Minute)})
	store.Save(&model.Analysis{ID: "2", Tenant: "tenant1", CreatedAt: now})
	store.Save(&model.Analysis{ID: "3", Tenant: "tenant2", CreatedAt: now})

	tenant1 := store.GetByTenant("tenant1")
	if len(tenant1) != 2 {
		t.Fatalf("Expected 2 analyses for tenant1, got %d", len(tenant1))
	}
	// Newest first
	if tenant1[0].ID != "2" {
		t.Errorf("Expected newest analysis first, got %s", tenant1[0].ID)
	}

	if len(store.GetByTenant("tenant3")) != 0 {
		t.Error("Expected no analyses for unknown tenant")
	}
}

func TestAnalysisStoreDelete(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Analysis{ID: "del-1", Tenant: "tenant1", CreatedAt: time.Now()})
	store.Delete("del-1")

	if store.Get("del-1") != nil {
		t.Error("Expected analysis to be deleted")
	}
	// Deleting a missing id is a no-op
	store.Delete("del-1")
}

func TestAnalysisStoreCleanup(t *testing.T) {
	store := newTestStore(3)

	base := time.Now()
	for i := 0; i < 5; i++ {
		store.Save(&model.Analysis{
			ID:        string(rune('a' + i)),
			Tenant:    "tenant1",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	if store.Count() != 3 {
		t.Errorf("Expected store bounded at 3, got %d", store.Count())
	}

	// Oldest entries evicted first
	if store.Get("a") != nil || store.Get("b") != nil {
		t.Error("Expected oldest analyses to be evicted")
	}
	if store.Get("e") == nil {
		t.Error("Expected newest analysis to survive")
	}
}

func TestAnalysisStoreUnlimited(t *testing.T) {
	store := newTestStore(0)

	for i := 0; i < 150; i++ {
		store.Save(&model.Analysis{
			ID:        string(rune(i)),
			Tenant:    "tenant1",
			CreatedAt: time.Now(),
		})
	}

	if store.Count() != 150 {
		t.Errorf("Expected unlimited store to keep all, got %d", store.Count())
	}
}
