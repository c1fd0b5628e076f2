package validate

import (
	"context"

	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
)

// SwaggerValidator runs the Swagger 2 path. It knows nothing about the
// OpenAPI 3 path; falling back between them is the dispatcher's job.
type SwaggerValidator struct {
	checker SwaggerChecker
}

func NewSwagger(c SwaggerChecker) *SwaggerValidator {
	return &SwaggerValidator{checker: c}
}

func (v *SwaggerValidator) Validate(ctx context.Context, doc *document.Document, level Level) Outcome {
	out := Outcome{Spec: diag.SpecSwagger, GatewayAccepted: true}
	result := v.checker.Check(ctx, doc)

	for _, msg := range result.Messages {
		c := diag.ClassifySwagger(msg)
		switch c.Kind {
		case diag.KindSwaggerMissing:
			out.SpecMissing = true
			out.add(diag.New(diag.SpecSwagger, diag.CodeInvalidOAS2, c.Detail, msg))

		case diag.KindMalformedSwagger:
			d := diag.New(diag.SpecSwagger, diag.CodeParseException, c.Detail, msg)
			if level.Surfaces() {
				if err := v.checker.ParseLenient(ctx, doc); err != nil {
					if diag.IsRemoteRefFailure(err.Error()) {
						out.audit(doc)
						continue
					}
					d = d.WithCause(err.Error())
				}
			}
			out.add(d)

		default:
			if c.Kind == diag.KindSchemaRefMissing {
				out.GatewayAccepted = false
			}
			out.add(diag.New(diag.SpecSwagger, diag.CodeParseException, c.Detail, msg))
		}
	}

	produced := result.Produced()
	switch {
	case len(result.Messages) > 0:
		if level.Surfaces() {
			out.Counts.Failed++
		}
		if produced {
			out.Status = StatusValidWithWarnings
			out.Counts.PartiallyPassed++
		} else {
			out.Status = StatusMalformed
			out.GatewayAccepted = false
			out.Counts.Malformed++
		}
	case produced:
		out.Status = StatusValid
		out.Counts.Succeeded++
	default:
		out.Status = StatusParseException
		out.GatewayAccepted = false
		out.Counts.Failed++
		out.add(diag.New(diag.SpecSwagger, diag.CodeParseException, diag.UnableToRender, ""))
	}

	if !level.Surfaces() {
		out.silence()
	}
	return out
}
