package diag

import (
	"fmt"
	"strings"
)

type Spec int

const (
	SpecSwagger Spec = iota
	SpecOpenAPI
)

func (s Spec) Label() string {
	if s == SpecSwagger {
		return "Invalid Swagger"
	}
	return "Invalid OpenAPI"
}

// Diagnostic is one reportable finding. Raw is the checker message it came
// from and is kept even when Detail rewrites it.
type Diagnostic struct {
	Spec    Spec
	Code    Code
	Message string
	Detail  string
	Cause   string
	Raw     string
}

func New(spec Spec, code Code, detail, raw string) Diagnostic {
	return Diagnostic{
		Spec:    spec,
		Code:    code,
		Message: code.Message(),
		Detail:  detail,
		Raw:     raw,
	}
}

// WithCause returns a copy carrying the secondary parser's error text.
func (d Diagnostic) WithCause(cause string) Diagnostic {
	d.Cause = cause
	return d
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, Error Code: %d, Error: %s", d.Spec.Label(), d.Code, d.Message)
	if d.Detail != "" {
		fmt.Fprintf(&b, ", Swagger Error: %s", d.Detail)
	}
	if d.Cause != "" {
		fmt.Fprintf(&b, ", Cause by: %s", d.Cause)
	}
	return b.String()
}
