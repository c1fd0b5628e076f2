// Package dispatch drives one document through classification and the
// Swagger 2 and OpenAPI 3 validators, retrying on the other path when the
// version marker the first one expects is absent.
package dispatch

import (
	"context"
	"time"

	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/stats"
	"github.com/kolah/oasgate/internal/validate"
)

type State int

const (
	StateStart State = iota
	StateClassify
	StateTryOpenAPI
	StateTrySwagger
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateClassify:
		return "classify"
	case StateTryOpenAPI:
		return "try-openapi"
	case StateTrySwagger:
		return "try-swagger"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Reporter receives everything a run makes visible. Diagnostics inside an
// outcome are already filtered by level.
type Reporter interface {
	ParseFailure(err error)
	Begin(v document.Verdict)
	Outcome(o validate.Outcome)
	Diagnostic(d diag.Diagnostic)
	End(v document.Verdict)
}

// Options configures the dispatcher.
type Options struct {
	Reporter Reporter
	// Timeout bounds the checkers for one document; zero disables it.
	Timeout time.Duration
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Reporter: nopReporter{},
		Timeout:  30 * time.Second,
	}
}

// Result describes how one document went through the dispatcher.
type Result struct {
	Verdict     document.Verdict
	Outcomes    []validate.Outcome
	Diagnostics []diag.Diagnostic
	Trace       []State
	Counts      stats.Counts
}

// StructuralFailure reports that the document never reached a validator.
func (r Result) StructuralFailure() bool {
	return r.Verdict.Err != nil
}

type Dispatcher struct {
	swagger *validate.SwaggerValidator
	openapi *validate.OpenAPIValidator
	options *Options
}

func New(swagger *validate.SwaggerValidator, openapi *validate.OpenAPIValidator, opts *Options) *Dispatcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return &Dispatcher{swagger: swagger, openapi: openapi, options: opts}
}

func (d *Dispatcher) Validate(ctx context.Context, doc *document.Document, level validate.Level) Result {
	if d.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.options.Timeout)
		defer cancel()
	}

	r := &run{Dispatcher: d, doc: doc, level: level}
	state := StateStart
	for state != StateDone {
		r.result.Trace = append(r.result.Trace, state)
		state = r.step(ctx, state)
	}
	r.result.Trace = append(r.result.Trace, StateDone)

	if r.begun {
		d.options.Reporter.End(r.result.Verdict)
	}
	return r.result
}

type run struct {
	*Dispatcher
	doc    *document.Document
	level  validate.Level
	begun  bool
	result Result
}

func (r *run) step(ctx context.Context, state State) State {
	switch state {
	case StateStart:
		return StateClassify

	case StateClassify:
		v := document.Classify(r.doc)
		r.result.Verdict = v
		if v.Err != nil {
			r.result.Counts.Failed++
			r.options.Reporter.ParseFailure(v.Err)
			return StateDone
		}
		r.begun = true
		r.options.Reporter.Begin(v)
		if v.Version == document.Swagger2 {
			return StateTrySwagger
		}
		return StateTryOpenAPI

	case StateTryOpenAPI:
		o := r.openapi.Validate(ctx, r.doc, r.level)
		r.record(o)
		if o.SpecMissing {
			return StateTrySwagger
		}
		return StateDone

	case StateTrySwagger:
		o := r.swagger.Validate(ctx, r.doc, r.level)
		r.record(o)
		if o.SpecMissing && r.result.Verdict.Version == document.Undetermined && r.level.Surfaces() {
			dg := diag.New(diag.SpecOpenAPI, diag.CodeParseException, diag.SwaggerOrOpenAPIMissing, "")
			r.result.Diagnostics = append(r.result.Diagnostics, dg)
			r.options.Reporter.Diagnostic(dg)
		}
		return StateDone
	}
	return StateDone
}

func (r *run) record(o validate.Outcome) {
	r.result.Outcomes = append(r.result.Outcomes, o)
	r.result.Counts = r.result.Counts.Add(o.Counts)
	r.options.Reporter.Outcome(o)
}

type nopReporter struct{}

func (nopReporter) ParseFailure(error) {}
func (nopReporter) Begin(document.Verdict) {}
func (nopReporter) Outcome(validate.Outcome) {}
func (nopReporter) Diagnostic(diag.Diagnostic) {}
func (nopReporter) End(document.Verdict) {}
