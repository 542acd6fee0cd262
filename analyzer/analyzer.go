// Package analyzer turns free-form text-generation output about a legal
// contract into a fixed-schema analysis result: a summary, a normalized
// clause list, and flagged risk clauses.
package analyzer

import (
	"context"
	"strings"

	"github.com/TahoorBR/LegalAdvisor/model"
)

// Default analysis parameters, overridable via Config.
const (
	DefaultModelName        = "gemini-3-flash-preview"
	LongContextModelName    = "gemini-3-pro-preview"
	DefaultLongContextWords = 3500
	DefaultMaxWords         = 5000
)

// summaryFallback is returned when the backend payload carries no usable
// summary field.
const summaryFallback = "Unable to generate summary."

// Generator is the external text-generation collaborator. It takes a model
// identifier and a prompt and returns the raw response text.
type Generator interface {
	Generate(ctx context.Context, modelName, prompt string) (string, error)
}

// Config holds the analysis parameters. Zero values fall back to the
// defaults above.
type Config struct {
	DefaultModel         string
	LongContextModel     string
	LongContextThreshold int
	MaxWords             int
	ModelOverride        string // always wins over length-based selection
}

func (c *Config) applyDefaults() {
	if c.DefaultModel == "" {
		c.DefaultModel = DefaultModelName
	}
	if c.LongContextModel == "" {
		c.LongContextModel = LongContextModelName
	}
	if c.LongContextThreshold <= 0 {
		c.LongContextThreshold = DefaultLongContextWords
	}
	if c.MaxWords <= 0 {
		c.MaxWords = DefaultMaxWords
	}
}

// Analyzer orchestrates contract analysis against a generation backend. It is
// constructed once and safe for concurrent use; each call builds its result
// from its own inputs only.
type Analyzer struct {
	gen Generator
	cfg Config
}

// New creates an Analyzer using the given generation backend.
func New(gen Generator, cfg Config) *Analyzer {
	cfg.applyDefaults()
	return &Analyzer{gen: gen, cfg: cfg}
}

// WithOverride returns a copy of the analyzer whose model selection always
// yields the given model. Used for per-request operator overrides; the
// receiver is not modified.
func (a *Analyzer) WithOverride(modelName string) *Analyzer {
	cfg := a.cfg
	cfg.ModelOverride = modelName
	return &Analyzer{gen: a.gen, cfg: cfg}
}

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SelectModel picks the backend model for a contract of the given length.
// The override, if configured, always wins; otherwise contracts at or above
// the long-context threshold use the long-context model.
func (a *Analyzer) SelectModel(wordCount int) (string, bool) {
	longContext := wordCount >= a.cfg.LongContextThreshold
	if a.cfg.ModelOverride != "" {
		return a.cfg.ModelOverride, longContext
	}
	if longContext {
		return a.cfg.LongContextModel, true
	}
	return a.cfg.DefaultModel, false
}

// MaxWords returns the configured word cap.
func (a *Analyzer) MaxWords() int {
	return a.cfg.MaxWords
}

// validate rejects empty or over-long contracts before any backend call.
func (a *Analyzer) validate(contractText string) (int, error) {
	if strings.TrimSpace(contractText) == "" {
		return 0, &ValidationError{Reason: "empty"}
	}

	wordCount := WordCount(contractText)
	if wordCount > a.cfg.MaxWords {
		return 0, &ValidationError{Reason: "too long", WordCount: wordCount, MaxWords: a.cfg.MaxWords}
	}

	return wordCount, nil
}

// ContractInfo describes a contract without analyzing it.
type ContractInfo struct {
	WordCount     int    `json:"word_count"`
	MaxWords      int    `json:"max_words"`
	IsValid       bool   `json:"is_valid"`
	ModelToUse    string `json:"model_to_use"`
	IsLongContext bool   `json:"is_long_context"`
}

// Info reports word count, validity and model selection for a contract. No
// backend call is made.
func (a *Analyzer) Info(contractText string) ContractInfo {
	wordCount := WordCount(contractText)
	modelName, longContext := a.SelectModel(wordCount)

	return ContractInfo{
		WordCount:     wordCount,
		MaxWords:      a.cfg.MaxWords,
		IsValid:       wordCount > 0 && wordCount <= a.cfg.MaxWords,
		ModelToUse:    modelName,
		IsLongContext: longContext,
	}
}

// Analyze performs a complete analysis in a single backend call. A backend
// failure or an unparseable response fails the whole analysis; no partial
// result is ever returned.
func (a *Analyzer) Analyze(ctx context.Context, contractText string) (*model.AnalysisResult, error) {
	wordCount, err := a.validate(contractText)
	if err != nil {
		return nil, err
	}

	modelName, longContext := a.SelectModel(wordCount)

	raw, err := a.gen.Generate(ctx, modelName, combinedPrompt(contractText))
	if err != nil {
		return nil, &AnalysisError{Op: "analysis failed", Err: err}
	}

	payload, err := ParseResponse(raw)
	if err != nil {
		return nil, &AnalysisError{Op: "failed to parse model response", Err: err}
	}

	summary, ok := payloadString(payload, "summary")
	if !ok || summary == "" {
		summary = summaryFallback
	}

	return &model.AnalysisResult{
		Summary:      summary,
		Clauses:      NormalizeClauses(clausesFromPayload(payload)),
		RiskyClauses: risksFromPayload(payload),
		Metadata: model.Metadata{
			WordCount:     wordCount,
			ModelUsed:     modelName,
			IsLongContext: longContext,
		},
	}, nil
}

// AnalyzeSplit performs a complete analysis in three independent backend
// calls. A parse failure in any one call degrades that field only; a backend
// failure is still fatal.
func (a *Analyzer) AnalyzeSplit(ctx context.Context, contractText string) (*model.AnalysisResult, error) {
	wordCount, err := a.validate(contractText)
	if err != nil {
		return nil, err
	}

	modelName, longContext := a.SelectModel(wordCount)

	summary, err := a.Summarize(ctx, contractText)
	if err != nil {
		return nil, err
	}

	clauses, err := a.ExtractClauses(ctx, contractText)
	if err != nil {
		return nil, err
	}

	risks, err := a.IdentifyRisks(ctx, contractText)
	if err != nil {
		return nil, err
	}

	return &model.AnalysisResult{
		Summary:      summary,
		Clauses:      clauses,
		RiskyClauses: risks,
		Metadata: model.Metadata{
			WordCount:     wordCount,
			ModelUsed:     modelName,
			IsLongContext: longContext,
		},
	}, nil
}

// Summarize generates a concise summary of the contract. When the response
// carries no parseable JSON the trimmed raw text is returned instead of an
// error; the combined path treats the same condition as fatal.
func (a *Analyzer) Summarize(ctx context.Context, contractText string) (string, error) {
	wordCount, err := a.validate(contractText)
	if err != nil {
		return "", err
	}

	modelName, _ := a.SelectModel(wordCount)

	raw, err := a.gen.Generate(ctx, modelName, summaryPrompt(contractText))
	if err != nil {
		return "", &AnalysisError{Op: "error generating summary", Err: err}
	}

	payload, err := ParseResponse(raw)
	if err != nil {
		return strings.TrimSpace(raw), nil
	}

	summary, ok := payloadString(payload, "summary")
	if !ok || summary == "" {
		return summaryFallback, nil
	}
	return summary, nil
}

// ExtractClauses extracts and classifies clauses from the contract. A parse
// failure degrades to the all-"Not found" list.
func (a *Analyzer) ExtractClauses(ctx context.Context, contractText string) ([]model.Clause, error) {
	wordCount, err := a.validate(contractText)
	if err != nil {
		return nil, err
	}

	modelName, _ := a.SelectModel(wordCount)

	raw, err := a.gen.Generate(ctx, modelName, clausesPrompt(contractText))
	if err != nil {
		return nil, &AnalysisError{Op: "error extracting clauses", Err: err}
	}

	payload, err := ParseResponse(raw)
	if err != nil {
		return notFoundClauses(), nil
	}

	return NormalizeClauses(clausesFromPayload(payload)), nil
}

// IdentifyRisks flags risky or ambiguous clauses. A parse failure degrades to
// an empty list.
func (a *Analyzer) IdentifyRisks(ctx context.Context, contractText string) ([]model.RiskyClause, error) {
	wordCount, err := a.validate(contractText)
	if err != nil {
		return nil, err
	}

	modelName, _ := a.SelectModel(wordCount)

	raw, err := a.gen.Generate(ctx, modelName, risksPrompt(contractText))
	if err != nil {
		return nil, &AnalysisError{Op: "error identifying risks", Err: err}
	}

	payload, err := ParseResponse(raw)
	if err != nil {
		return []model.RiskyClause{}, nil
	}

	return risksFromPayload(payload), nil
}

func clausesFromPayload(payload map[string]any) []model.Clause {
	entries := payloadList(payload, "clauses")
	clauses := make([]model.Clause, 0, len(entries))
	for _, entry := range entries {
		clauseType, _ := entry["type"].(string)
		clauseText, _ := entry["clause"].(string)
		if clauseType == "" && clauseText == "" {
			continue
		}
		clauses = append(clauses, model.Clause{Type: clauseType, Clause: clauseText})
	}
	return clauses
}

func risksFromPayload(payload map[string]any) []model.RiskyClause {
	entries := payloadList(payload, "risky_clauses")
	risks := make([]model.RiskyClause, 0, len(entries))
	for _, entry := range entries {
		clause, _ := entry["clause"].(string)
		reason, _ := entry["reason"].(string)
		if clause == "" && reason == "" {
			continue
		}
		risks = append(risks, model.RiskyClause{Clause: clause, Reason: reason})
	}
	return risks
}
