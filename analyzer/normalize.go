package analyzer

import (
	"sort"

	"github.com/TahoorBR/LegalAdvisor/model"
)

// otherClauseRank sorts clauses with unrecognized type labels after every
// required clause type while keeping their original relative order.
const otherClauseRank = 999

var clauseRank = func() map[string]int {
	ranks := make(map[string]int, len(model.RequiredClauseTypes))
	for i, t := range model.RequiredClauseTypes {
		ranks[t] = i
	}
	return ranks
}()

// NormalizeClauses enforces the fixed-taxonomy invariant on a raw clause
// list: every required clause type appears at least once (missing ones get a
// "Not found" sentinel entry), required types come first in canonical order,
// and anything else keeps its original label and relative position after
// them. Multiple clauses of the same required type are all kept.
func NormalizeClauses(clauses []model.Clause) []model.Clause {
	found := make(map[string]bool, len(clauses))
	result := make([]model.Clause, 0, len(clauses)+len(model.RequiredClauseTypes))

	for _, c := range clauses {
		found[c.Type] = true
		result = append(result, c)
	}

	for _, t := range model.RequiredClauseTypes {
		if !found[t] {
			result = append(result, model.Clause{Type: t, Clause: model.ClauseNotFound})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return rankOf(result[i].Type) < rankOf(result[j].Type)
	})

	return result
}

func rankOf(clauseType string) int {
	if rank, ok := clauseRank[clauseType]; ok {
		return rank
	}
	return otherClauseRank
}

// notFoundClauses returns the all-sentinel clause list used when clause
// extraction yields nothing usable.
func notFoundClauses() []model.Clause {
	result := make([]model.Clause, 0, len(model.RequiredClauseTypes))
	for _, t := range model.RequiredClauseTypes {
		result = append(result, model.Clause{Type: t, Clause: model.ClauseNotFound})
	}
	return result
}
