// Package validate classifies the output of the Swagger 2 and OpenAPI 3
// conformance checkers into gateway outcomes, diagnostics and counters.
package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kolah/oasgate/internal/checker"
	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/refs"
	"github.com/kolah/oasgate/internal/stats"
)

// Level controls how much of the classification is surfaced to the caller.
type Level int

const (
	// LevelParseOnly classifies but never surfaces diagnostics.
	LevelParseOnly Level = 0
	// LevelLegacy surfaces diagnostics the way older gateway releases did.
	LevelLegacy Level = 1
	// LevelFull surfaces every diagnostic.
	LevelFull Level = 2
)

var ErrInvalidLevel = errors.New("invalid validation level")

func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLevel, s)
	}
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %d (valid: 0, 1, 2)", ErrInvalidLevel, n)
	}
	return l, nil
}

func (l Level) Valid() bool {
	return l >= LevelParseOnly && l <= LevelFull
}

// Surfaces reports whether diagnostics are emitted at this level.
func (l Level) Surfaces() bool {
	return l == LevelLegacy || l == LevelFull
}

type Status int

const (
	StatusValid Status = iota
	StatusValidWithWarnings
	StatusMalformed
	StatusSpecMissing
	StatusParseException
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusValidWithWarnings:
		return "valid-with-warnings"
	case StatusMalformed:
		return "malformed"
	case StatusSpecMissing:
		return "spec-missing"
	case StatusParseException:
		return "parse-exception"
	default:
		return "unknown"
	}
}

// Outcome is the result of running one spec path over one document.
type Outcome struct {
	Spec        diag.Spec
	Status      Status
	SpecMissing bool
	Diagnostics []diag.Diagnostic

	// RemoteAudit is set when a failure was traced to remote references;
	// RemoteRefs then lists the non-local pointers found in the document.
	RemoteAudit bool
	RemoteRefs  []refs.Pointer

	// GatewayAccepted is informational; it never changes Status.
	GatewayAccepted bool

	Counts stats.Counts
}

// SwaggerChecker is the external Swagger 2 conformance checker.
type SwaggerChecker interface {
	Check(ctx context.Context, doc *document.Document) checker.Result
	ParseLenient(ctx context.Context, doc *document.Document) error
}

// OpenAPIChecker is the external OpenAPI 3 conformance checker.
type OpenAPIChecker interface {
	Check(ctx context.Context, doc *document.Document) checker.Result
}

// audit records the remote references of doc once per outcome.
func (o *Outcome) audit(doc *document.Document) {
	if o.RemoteAudit {
		return
	}
	o.RemoteAudit = true
	found, err := refs.FindRemote(doc.Raw)
	if err != nil {
		o.Diagnostics = append(o.Diagnostics, diag.New(o.Spec, diag.CodeParseException, err.Error(), err.Error()))
		return
	}
	o.RemoteRefs = found
}

func (o *Outcome) add(d diag.Diagnostic) {
	o.Diagnostics = append(o.Diagnostics, d)
}

// silence drops everything meant for the caller's eyes; status and counts stay.
func (o *Outcome) silence() {
	o.Diagnostics = nil
	o.RemoteAudit = false
	o.RemoteRefs = nil
}
