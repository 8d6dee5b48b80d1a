package rules

import (
	"regexp"
)

// ConditionKind tags a Condition.
type ConditionKind int

const (
	// Any accepts every value at its position.
	Any ConditionKind = iota
	// Pattern requires a regular expression match at the start of the value.
	Pattern
)

// Condition is one positional test of an Item.
type Condition struct {
	kind    ConditionKind
	raw     string
	pattern *regexp.Regexp
}

// AnyCondition returns a condition that accepts every value.
func AnyCondition() Condition {
	return Condition{kind: Any}
}

// CompileCondition builds a Condition from its configured text. An empty
// string is Any. Otherwise the expression is anchored at the start only.
func CompileCondition(raw string) (Condition, error) {
	if raw == "" {
		return AnyCondition(), nil
	}
	// Compile alone first so an unbalanced ")" cannot escape the group below.
	if _, err := regexp.Compile(raw); err != nil {
		return Condition{}, err
	}
	re, err := regexp.Compile(`^(?:` + raw + `)`)
	if err != nil {
		return Condition{}, err
	}
	return Condition{kind: Pattern, raw: raw, pattern: re}, nil
}

func (c Condition) Kind() ConditionKind { return c.kind }

// Raw returns the configured expression, empty for Any.
func (c Condition) Raw() string { return c.raw }

// Accepts reports whether value satisfies the condition.
func (c Condition) Accepts(value string) bool {
	switch c.kind {
	case Pattern:
		return c.pattern.MatchString(value)
	default:
		return true
	}
}

func (c Condition) String() string {
	if c.kind == Any {
		return "*"
	}
	return c.raw
}
