package analyzer

import (
	"fmt"
	"strings"
)

// riskIndicators is the vocabulary of contract language that tends to create
// legal ambiguity. A sample of it is quoted in the risk prompts.
var riskIndicators = []string{
	// Vague effort terms
	"reasonable effort", "reasonable efforts", "best effort", "best efforts",
	"commercially reasonable efforts",

	// Discretionary terms
	"at the discretion of", "in its sole discretion", "as deemed appropriate",
	"at its option", "may elect to",

	// Undefined time terms
	"reasonable time", "timely manner", "as soon as practicable",
	"promptly", "without undue delay",

	// Modification terms
	"may be modified", "subject to change", "reserves the right to modify",

	// Scope limiters
	"without limitation", "including but not limited to",
	"and/or", "etc.",

	// Vague standards
	"material breach", "substantially similar", "good faith",
	"to the extent possible", "materially adverse",

	// Force majeure
	"force majeure", "act of God", "circumstances beyond control",

	// One-sided terms
	"sole remedy", "exclusive remedy", "waives all claims",
	"indemnify and hold harmless",
}

func sampleIndicators(n int) string {
	if n > len(riskIndicators) {
		n = len(riskIndicators)
	}
	quoted := make([]string, n)
	for i := 0; i < n; i++ {
		quoted[i] = fmt.Sprintf("%q", riskIndicators[i])
	}
	return strings.Join(quoted, ", ")
}

func summaryPrompt(contractText string) string {
	return fmt.Sprintf(`You are a legal contract analyst. Analyze the following contract and provide a concise summary.

Focus on these key elements:
- Payment terms and conditions
- Confidentiality requirements
- Termination conditions
- Dispute resolution mechanisms
- Any other critical terms

Contract:
%s

Provide your response as a JSON object with this exact structure:
{"summary": "Your concise summary here"}

Keep the summary clear, professional, and under 200 words.`, contractText)
}

func clausesPrompt(contractText string) string {
	return fmt.Sprintf(`You are a legal contract analyst. Extract and classify the following types of clauses from this contract:

1. Payment Terms: Terms related to payments, deadlines, penalties, amounts, installments
2. Confidentiality: Terms defining confidentiality, its duration, and restrictions
3. Dispute Resolution: How disputes will be resolved (arbitration, litigation, mediation)
4. Termination: Conditions under which the contract can be terminated

Contract:
%s

Provide your response as a JSON object with this exact structure:
{
  "clauses": [
    {"type": "Payment Terms", "clause": "exact text from contract OR 'Not found' if not present"},
    {"type": "Confidentiality", "clause": "exact text from contract OR 'Not found' if not present"},
    {"type": "Dispute Resolution", "clause": "exact text from contract OR 'Not found' if not present"},
    {"type": "Termination", "clause": "exact text from contract OR 'Not found' if not present"}
  ]
}

CRITICAL INSTRUCTIONS:
- Extract the EXACT text from the contract for each clause
- If a clause type is NOT found in the contract, you MUST include it with "clause": "Not found"
- DO NOT hallucinate or invent clauses that don't exist in the contract
- ALL FOUR clause types must appear in the output
- You may include multiple clauses of the same type if present`, contractText)
}

func risksPrompt(contractText string) string {
	return fmt.Sprintf(`You are a legal risk analyst. Analyze this contract and identify risky or ambiguous clauses.

Look for these risk categories:

1. VAGUE LANGUAGE: Terms like %s
2. ONE-SIDED TERMS: Clauses heavily favoring one party
3. MISSING SPECIFICS: Undefined deadlines, unclear conditions, missing amounts
4. AMBIGUOUS CRITERIA: Unclear completion milestones or performance standards
5. LACK OF REMEDIES: No specified penalties or resolution for breaches
6. OPEN-ENDED OBLIGATIONS: Unlimited duration or scope
7. SUBJECTIVE STANDARDS: Terms requiring interpretation
8. MISSING CLAUSES: Important protections that should be present but aren't

Contract:
%s

Provide your response as a JSON object:
{
  "risky_clauses": [
    {
      "clause": "exact risky clause text from contract",
      "reason": "detailed explanation of the legal risk and potential consequences"
    }
  ]
}

RULES:
- Extract EXACT text from the contract for each risky clause
- Provide SPECIFIC explanations of why each clause is risky
- Consider legal implications and dispute potential
- If no risky clauses found, return empty array: {"risky_clauses": []}`, sampleIndicators(8), contractText)
}

func combinedPrompt(contractText string) string {
	return fmt.Sprintf(`You are an expert legal contract analyst. Perform a comprehensive analysis of this contract.

Contract:
%s

Provide your analysis as a JSON object with this EXACT structure:
{
  "summary": "A concise summary (under 200 words) covering payment terms, confidentiality, termination, and dispute resolution",
  "clauses": [
    {"type": "Payment Terms", "clause": "exact text OR 'Not found'"},
    {"type": "Confidentiality", "clause": "exact text OR 'Not found'"},
    {"type": "Dispute Resolution", "clause": "exact text OR 'Not found'"},
    {"type": "Termination", "clause": "exact text OR 'Not found'"}
  ],
  "risky_clauses": [
    {
      "clause": "exact risky clause text",
      "reason": "detailed explanation of the risk"
    }
  ]
}

CRITICAL INSTRUCTIONS:

1. SUMMARY:
   - Focus on key business terms
   - Keep under 200 words
   - Be professional and clear

2. CLAUSES:
   - Extract EXACT text from the contract
   - If a clause type is NOT present, use "Not found"
   - DO NOT invent clauses - only extract what exists
   - ALL FOUR types MUST appear in output

3. RISKS:
   - Look for vague terms like: %s
   - Flag one-sided or ambiguous clauses
   - Explain WHY each clause is risky
   - Consider legal disputes and enforcement issues
   - If no risks found, use empty array

Return ONLY valid JSON, no additional text.`, contractText, sampleIndicators(6))
}
