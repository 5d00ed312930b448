package score

import (
	"strconv"
	"strings"
)

func formatInt64(v int64) string { return strconv.FormatInt(v, 10) }

// ParseSimple parses the grammar `^-?\d+$`, e.g. "-6".
func ParseSimple(text string) (Simple, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &ParseError{Shape: "simple", Text: text, Offend: text}
	}
	return Simple(v), nil
}

// ParseHardSoft parses the grammar `^-?\d+hard/-?\d+soft$`,
// e.g. "-2hard/5soft".
func ParseHardSoft(text string) (HardSoft, error) {
	hardPart, softPart, ok := strings.Cut(text, "/")
	if !ok {
		return HardSoft{}, &ParseError{Shape: "hard-soft", Text: text}
	}
	hardNum, ok := strings.CutSuffix(hardPart, "hard")
	if !ok {
		return HardSoft{}, &ParseError{Shape: "hard-soft", Text: text, Offend: hardPart}
	}
	softNum, ok := strings.CutSuffix(softPart, "soft")
	if !ok {
		return HardSoft{}, &ParseError{Shape: "hard-soft", Text: text, Offend: softPart}
	}
	hard, err := strconv.ParseInt(hardNum, 10, 64)
	if err != nil {
		return HardSoft{}, &ParseError{Shape: "hard-soft", Text: text, Offend: hardNum}
	}
	soft, err := strconv.ParseInt(softNum, 10, 64)
	if err != nil {
		return HardSoft{}, &ParseError{Shape: "hard-soft", Text: text, Offend: softNum}
	}
	return HardSoft{Hard: hard, Soft: soft}, nil
}

// ParseBendable parses the grammar
// `^\[(-?\d+/)*-?\d+\]hard/\[(-?\d+/)*-?\d+\]soft$`,
// e.g. "[0/-1]hard/[-10/-20]soft".
func ParseBendable(text string) (Bendable, error) {
	hardBracket, softPart, ok := strings.Cut(text, "]hard/")
	if !ok {
		return Bendable{}, &ParseError{Shape: "bendable", Text: text}
	}
	hardInner, ok := strings.CutPrefix(hardBracket, "[")
	if !ok {
		return Bendable{}, &ParseError{Shape: "bendable", Text: text, Offend: hardBracket}
	}
	softInner, ok := strings.CutSuffix(softPart, "]soft")
	if !ok {
		return Bendable{}, &ParseError{Shape: "bendable", Text: text, Offend: softPart}
	}
	softInner, ok = strings.CutPrefix(softInner, "[")
	if !ok {
		return Bendable{}, &ParseError{Shape: "bendable", Text: text, Offend: softPart}
	}

	hard, err := parseLevelList(hardInner)
	if err != nil {
		return Bendable{}, &ParseError{Shape: "bendable", Text: text, Offend: hardInner}
	}
	soft, err := parseLevelList(softInner)
	if err != nil {
		return Bendable{}, &ParseError{Shape: "bendable", Text: text, Offend: softInner}
	}
	return Bendable{Hard: hard, Soft: soft}, nil
}

func parseLevelList(s string) ([]int64, error) {
	parts := strings.Split(s, "/")
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Parse dispatches to ParseSimple, ParseHardSoft or ParseBendable based on
// the text's grammar, returning the parsed value as a Score. Use this
// when the shape is not known ahead of time (e.g. reading a
// best_score_limit from solver configuration, spec §6).
func Parse(text string) (Score, error) {
	switch {
	case strings.HasPrefix(text, "["):
		return ParseBendable(text)
	case strings.Contains(text, "hard/"):
		return ParseHardSoft(text)
	default:
		return ParseSimple(text)
	}
}
