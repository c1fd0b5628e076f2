// Package report turns validation results into log records and the run
// summary.
package report

import (
	"io"
	"log/slog"

	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/validate"
)

// Reporter logs every event of a run through slog.
type Reporter struct {
	log *slog.Logger
}

// New creates a Reporter writing text or JSON records to w.
func New(w io.Writer, format string, level slog.Level) *Reporter {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return NewWithLogger(slog.New(h))
}

func NewWithLogger(l *slog.Logger) *Reporter {
	return &Reporter{log: l}
}

func (r *Reporter) Logger() *slog.Logger {
	return r.log
}

func (r *Reporter) FileStart(path string) {
	r.log.Info("Start parsing definition file", "file", path)
}

func (r *Reporter) LocationError(path string, err error) {
	r.log.Error("Error occurred while reading the definition, it will not be validated", "location", path, "error", err)
}

func (r *Reporter) ParseFailure(err error) {
	r.log.Error("Error occurred while parsing OAS definition. Verify the provided definition format", "error", err)
	r.log.Error("Validation failed", "outcome", "structural-parse-failure")
}

func (r *Reporter) Begin(v document.Verdict) {
	if v.Version == document.Undetermined {
		r.log.Error("Invalid OAS definition provided")
	}
	r.log.Info("---------------- Parsing started ----------------", "name", v.Name, "version", v.Version.String())
}

func (r *Reporter) End(v document.Verdict) {
	r.log.Info("---------------- Parsing complete ----------------", "name", v.Name)
}

func (r *Reporter) Diagnostic(d diag.Diagnostic) {
	attrs := []any{"code", int(d.Code)}
	if d.Raw != "" {
		attrs = append(attrs, "raw", d.Raw)
	}
	r.log.Error(d.String(), attrs...)
}

func (r *Reporter) Outcome(o validate.Outcome) {
	for _, d := range o.Diagnostics {
		r.Diagnostic(d)
	}

	if o.RemoteAudit {
		r.log.Warn("Validate the following remote references and make sure that they are valid and accessible:")
		for _, p := range o.RemoteRefs {
			r.log.Warn(p.String(), "line", p.Line, "column", p.Column)
		}
	}

	subject := "OpenAPI"
	if o.Spec == diag.SpecSwagger {
		subject = "Swagger"
	}

	switch o.Status {
	case validate.StatusValid:
		if o.Spec == diag.SpecSwagger {
			r.log.Info("Swagger file is valid", "outcome", o.Status.String())
		} else {
			r.log.Info("Swagger file is valid OpenAPI 3 definition", "outcome", o.Status.String())
		}
	case validate.StatusValidWithWarnings:
		r.log.Info(subject+" passed with errors, using may lead to functionality issues.", "outcome", o.Status.String())
	case validate.StatusMalformed:
		r.log.Error("Malformed "+subject+", Please fix the listed issues before proceeding", "outcome", o.Status.String())
	case validate.StatusParseException:
		r.log.Error("Validation failed", "outcome", o.Status.String())
	case validate.StatusSpecMissing:
		r.log.Debug(subject+" version marker missing", "outcome", o.Status.String())
	}

	if o.Spec == diag.SpecSwagger && o.GatewayAccepted {
		r.log.Info("Swagger file will be accepted by the gateway")
	}
}
