package meta

import (
	"github.com/coregx/coregrep/literal"
	"github.com/coregx/coregrep/prefilter"
)

// Strategy represents the execution strategy for line matching.
//
// Strategy selection is automatic based on pattern analysis.
type Strategy int

const (
	// UseBacktrack runs the NFA simulator on every line.
	// Selected when:
	//   - No literal is required by every match (e.g. [a-z]+, a*)
	//   - Required literals are shorter than MinLiteralLen
	//   - EnablePrefilter is false in config
	UseBacktrack Strategy = iota

	// UsePrefilterBacktrack rejects lines without a required literal and
	// simulates the rest.
	// Selected when:
	//   - Every match contains one of a small set of literals
	//   - The pattern is anchored or its literal set is not complete
	UsePrefilterBacktrack

	// UseLiteral answers IsMatch with the literal scan alone.
	// Selected when:
	//   - The pattern matches exactly a finite set of non-empty strings
	//   - The pattern has no anchors
	UseLiteral
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "UseBacktrack"
	case UsePrefilterBacktrack:
		return "UsePrefilterBacktrack"
	case UseLiteral:
		return "UseLiteral"
	default:
		return "Unknown"
	}
}

// SelectStrategy picks the strategy for a pattern with the given anchors,
// extracted literals and prefilter. pf is nil when no prefilter was built.
func SelectStrategy(anchoredStart, anchoredEnd bool, literals *literal.Seq, pf prefilter.Prefilter) Strategy {
	if pf == nil {
		return UseBacktrack
	}
	if !anchoredStart && !anchoredEnd && literals.AllComplete() && pf.IsComplete() {
		return UseLiteral
	}
	return UsePrefilterBacktrack
}

// buildPrefilter extracts literals and builds a prefilter, honoring the
// prefilter settings of config. It returns a nil prefilter when the
// literals are unusable.
func buildPrefilter(literals *literal.Seq, config Config) prefilter.Prefilter {
	if !config.EnablePrefilter || literals.IsEmpty() {
		return nil
	}
	if literals.MinLen() < config.MinLiteralLen {
		return nil
	}
	return prefilter.NewBuilder(literals).Build()
}
