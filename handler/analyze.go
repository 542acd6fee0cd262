package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/TahoorBR/LegalAdvisor/analyzer"
	"github.com/TahoorBR/LegalAdvisor/middleware"
	"github.com/TahoorBR/LegalAdvisor/model"
	"github.com/TahoorBR/LegalAdvisor/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyzeHandler struct {
	analyzer *analyzer.Analyzer
	store    *service.AnalysisStore
	archive  *service.ArchiveService // nil when archiving is disabled
}

func NewAnalyzeHandler(a *analyzer.Analyzer, store *service.AnalysisStore, archive *service.ArchiveService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: a,
		store:    store,
		archive:  archive,
	}
}

type AnalyzeRequest struct {
	ContractText string `json:"contract_text" binding:"required"`
	Model        string `json:"model,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

type InfoRequest struct {
	ContractText string `json:"contract_text"`
}

// Analyze runs a full contract analysis and stores the result
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contract_text is required"})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = model.ModeCombined
	}
	if mode != model.ModeCombined && mode != model.ModeSplit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'combined' or 'split'"})
		return
	}

	a := h.analyzer
	if req.Model != "" {
		a = a.WithOverride(req.Model)
	}

	var result *model.AnalysisResult
	var err error
	if mode == model.ModeSplit {
		result, err = a.AnalyzeSplit(c.Request.Context(), req.ContractText)
	} else {
		result, err = a.Analyze(c.Request.Context(), req.ContractText)
	}
	if err != nil {
		var vErr *analyzer.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		var aErr *analyzer.AnalysisError
		if errors.As(err, &aErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": aErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	analysis := &model.Analysis{
		ID:        uuid.New().String(),
		Tenant:    tenant,
		Mode:      mode,
		Result:    result,
		CreatedAt: time.Now(),
	}

	// Archive failures never fail the request, the result is already in hand
	if h.archive != nil {
		objectName, err := h.archive.StoreResult(c.Request.Context(), tenant, analysis.ID, result)
		if err != nil {
			slog.Warn("failed to archive analysis result", "id", analysis.ID, "error", err)
		} else if url, err := h.archive.GetPresignedURL(c.Request.Context(), objectName); err != nil {
			slog.Warn("failed to presign archived result", "id", analysis.ID, "error", err)
		} else {
			analysis.ArchiveURL = url
		}
	}

	h.store.Save(analysis)

	response := gin.H{
		"id":            analysis.ID,
		"mode":          mode,
		"summary":       result.Summary,
		"clauses":       result.Clauses,
		"risky_clauses": result.RiskyClauses,
		"metadata":      result.Metadata,
	}
	if analysis.ArchiveURL != "" {
		response["archive_url"] = analysis.ArchiveURL
	}

	c.JSON(http.StatusOK, response)
}

// Info reports word count and model selection without calling the backend
func (h *AnalyzeHandler) Info(c *gin.Context) {
	var req InfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Info(req.ContractText))
}

// List returns all analyses for the current tenant without full results
func (h *AnalyzeHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	analyses := h.store.GetByTenant(tenant)

	result := make([]gin.H, len(analyses))
	for i, analysis := range analyses {
		entry := gin.H{
			"id":         analysis.ID,
			"mode":       analysis.Mode,
			"created_at": analysis.CreatedAt.Format(time.RFC3339),
		}
		if analysis.Result != nil {
			entry["word_count"] = analysis.Result.Metadata.WordCount
			entry["model_used"] = analysis.Result.Metadata.ModelUsed
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"analyses": result})
}

// Get returns a single analysis with its full result
func (h *AnalyzeHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	// Presigned URLs expire, so re-sign on every read instead of serving
	// the one minted at analysis time
	if h.archive != nil && analysis.ArchiveURL != "" {
		objectName := h.archive.ObjectName(tenant, id)
		if url, err := h.archive.GetPresignedURL(c.Request.Context(), objectName); err != nil {
			slog.Warn("failed to presign archived result", "id", id, "error", err)
		} else {
			out := *analysis
			out.ArchiveURL = url
			c.JSON(http.StatusOK, out)
			return
		}
	}

	c.JSON(http.StatusOK, analysis)
}

// Delete removes an analysis and its archived copy if one exists
func (h *AnalyzeHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	analysis := h.store.Get(id)
	if analysis == nil || analysis.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	if h.archive != nil && analysis.ArchiveURL != "" {
		objectName := h.archive.ObjectName(tenant, id)
		if err := h.archive.DeleteResult(c.Request.Context(), objectName); err != nil {
			slog.Warn("failed to delete archived result", "id", id, "error", err)
		}
	}

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Analysis deleted"})
}
