package model

import (
	"time"
)

// Clause type labels. The four required types always appear in analysis
// output, in this order; anything else the backend labels is kept as-is and
// sorted after them.
const (
	ClauseTypePaymentTerms      = "Payment Terms"
	ClauseTypeConfidentiality   = "Confidentiality"
	ClauseTypeDisputeResolution = "Dispute Resolution"
	ClauseTypeTermination       = "Termination"
)

// RequiredClauseTypes is the canonical order of the closed taxonomy.
var RequiredClauseTypes = []string{
	ClauseTypePaymentTerms,
	ClauseTypeConfidentiality,
	ClauseTypeDisputeResolution,
	ClauseTypeTermination,
}

// ClauseNotFound is the sentinel text for a required clause type that was
// absent from the contract.
const ClauseNotFound = "Not found"

// Clause is a single extracted contract clause with its classification.
type Clause struct {
	Type   string `json:"type"`
	Clause string `json:"clause"`
}

// RiskyClause is a clause flagged as risky or ambiguous, with the rationale.
type RiskyClause struct {
	Clause string `json:"clause"`
	Reason string `json:"reason"`
}

// Metadata describes how an analysis was performed.
type Metadata struct {
	WordCount     int    `json:"word_count"`
	ModelUsed     string `json:"model_used"`
	IsLongContext bool   `json:"is_long_context"`
}

// AnalysisResult is the complete output of one contract analysis. The Clauses
// slice always contains exactly one entry per required clause type, in
// canonical order, before any other entries.
type AnalysisResult struct {
	Summary      string        `json:"summary"`
	Clauses      []Clause      `json:"clauses"`
	RiskyClauses []RiskyClause `json:"risky_clauses"`
	Metadata     Metadata      `json:"metadata"`
}

// Analysis is a stored analysis record
type Analysis struct {
	ID         string          `json:"id"`
	Tenant     string          `json:"tenant"`
	Mode       string          `json:"mode"`
	Result     *AnalysisResult `json:"result,omitempty"`
	ArchiveURL string          `json:"archive_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Analysis mode constants
const (
	ModeCombined = "combined"
	ModeSplit    = "split"
)
