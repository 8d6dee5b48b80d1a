package rules

import (
	"strings"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/template"
)

// Item is a named rule bound to one template. Items are compared by id:
// two items with the same id are the same rule.
type Item struct {
	id         string
	conditions []Condition
	template   *template.Template
}

// NewItem compiles rawConditions in order. If any condition fails to
// compile the whole item is rejected with INVALID_CONDITION.
func NewItem(id string, rawConditions []string, tmpl *template.Template) (*Item, error) {
	conditions := make([]Condition, 0, len(rawConditions))
	for i, raw := range rawConditions {
		c, err := CompileCondition(raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidCondition,
				"item %s: condition %d %q does not compile", id, i, raw).
				WithDetail("item", id).
				WithDetail("position", i).
				WithDetail("pattern", raw)
		}
		conditions = append(conditions, c)
	}

	return &Item{
		id:         id,
		conditions: conditions,
		template:   tmpl,
	}, nil
}

func (i *Item) ID() string                   { return i.id }
func (i *Item) Template() *template.Template { return i.template }

// Conditions returns a copy of the item's conditions.
func (i *Item) Conditions() []Condition {
	out := make([]Condition, len(i.conditions))
	copy(out, i.conditions)
	return out
}

// Matches reports whether every condition accepts the argument at its
// position. Fewer arguments than conditions never match.
func (i *Item) Matches(args []string) bool {
	if len(args) < len(i.conditions) {
		return false
	}
	for pos, c := range i.conditions {
		if !c.Accepts(args[pos]) {
			return false
		}
	}
	return true
}

// Equal compares items by id.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.id == other.id
}

func (i *Item) String() string {
	parts := make([]string, len(i.conditions))
	for n, c := range i.conditions {
		parts[n] = c.String()
	}
	return i.id + ": [" + strings.Join(parts, ", ") + "]"
}
