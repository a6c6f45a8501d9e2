package moneyslip

import "github.com/anmds2025/roomify/pkg/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for money slips.
	// Slips are handed to renters, so numbering gaps are acceptable but
	// duplicates are not: strict sequencing.
	NumeratorStrategy = numerator.StrategyStrict
)
