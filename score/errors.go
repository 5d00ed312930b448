package score

import "fmt"

// Sentinel errors for score construction, arithmetic and parsing.
var (
	// ErrShapeMismatch indicates two score operands disagree on hard-level
	// count and/or soft-level count. Fatal per the error-handling policy:
	// callers that can prove shapes match ahead of time (e.g. a
	// constraint set validated once at construction) should never see it
	// at runtime.
	ErrShapeMismatch = fmt.Errorf("score: shape mismatch")

	// ErrScoreOverflow indicates a 64-bit signed overflow during Add or
	// Subtract (including a subtrahend level of math.MinInt64, whose
	// negation does not fit). Fatal; Add and Subtract never wrap. Negate
	// has no error return and saturates math.MinInt64 at math.MaxInt64.
	ErrScoreOverflow = fmt.Errorf("score: int64 overflow")
)

// ParseError is returned by Parse* when the input text does not match the
// shape's grammar. It is recoverable: callers decide how to surface it.
type ParseError struct {
	Shape  string // "simple", "hard-soft", or "bendable"
	Text   string // the full input that failed to parse
	Offend string // the offending substring, when identifiable
}

func (e *ParseError) Error() string {
	if e.Offend != "" {
		return fmt.Sprintf("score: invalid %s score %q: near %q", e.Shape, e.Text, e.Offend)
	}
	return fmt.Sprintf("score: invalid %s score %q", e.Shape, e.Text)
}
