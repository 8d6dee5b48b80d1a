package registry

import (
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/rs/zerolog"
)

// Severity of a build issue.
type Severity string

const (
	// SeverityError means an entity was dropped because it is invalid.
	SeverityError Severity = "error"
	// SeverityWarning means the configuration is suspicious or an entity
	// was dropped because of a reference to something that does not exist.
	SeverityWarning Severity = "warning"
)

// Entity kinds named in issues.
const (
	EntityTemplate = "template"
	EntityItem     = "item"
	EntityUser     = "user"
)

// Issue is one problem found while building.
type Issue struct {
	Severity Severity         `json:"severity" yaml:"severity"`
	Code     errors.ErrorCode `json:"code" yaml:"code"`
	Entity   string           `json:"entity" yaml:"entity"`
	ID       string           `json:"id" yaml:"id"`
	// Ref is the id being referenced for DANGLING_REFERENCE and
	// DUPLICATE_SUBSCRIPTION, empty otherwise.
	Ref     string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Message string `json:"message" yaml:"message"`
	Err     error  `json:"-" yaml:"-"`
}

// Report collects the issues of one build.
type Report struct {
	issues []Issue
}

func (r *Report) add(sev Severity, entity, id, ref string, err error) {
	r.issues = append(r.issues, Issue{
		Severity: sev,
		Code:     errors.GetErrorCode(err),
		Entity:   entity,
		ID:       id,
		Ref:      ref,
		Message:  err.Error(),
		Err:      err,
	})
}

// Issues returns issues in the order they were found.
func (r *Report) Issues() []Issue { return r.issues }

// HasErrors reports whether any entity was dropped as invalid.
func (r *Report) HasErrors() bool {
	for _, i := range r.issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues with the given code.
func (r *Report) Count(code errors.ErrorCode) int {
	n := 0
	for _, i := range r.issues {
		if i.Code == code {
			n++
		}
	}
	return n
}

// Log writes every issue to logger.
func (r *Report) Log(logger zerolog.Logger) {
	for _, i := range r.issues {
		ev, msg := logger.Warn(), "Configuration warning"
		if i.Severity == SeverityError {
			ev, msg = logger.Error(), "Invalid configuration entry dropped"
		}
		ev = ev.Str("code", string(i.Code)).Str(i.Entity, i.ID)
		if i.Ref != "" {
			ev = ev.Str("ref", i.Ref)
		}
		ev.Err(i.Err).Msg(msg)
	}
}
