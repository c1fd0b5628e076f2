package validate

import (
	"context"

	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
)

// OpenAPIValidator runs the OpenAPI 3 path. A missing openapi marker leaves
// every counter untouched so the Swagger 2 retry counts the document.
type OpenAPIValidator struct {
	checker OpenAPIChecker
}

func NewOpenAPI(c OpenAPIChecker) *OpenAPIValidator {
	return &OpenAPIValidator{checker: c}
}

func (v *OpenAPIValidator) Validate(ctx context.Context, doc *document.Document, level Level) Outcome {
	out := Outcome{Spec: diag.SpecOpenAPI}
	result := v.checker.Check(ctx, doc)

	for _, msg := range result.Messages {
		c := diag.ClassifyOpenAPI(msg)
		switch c.Kind {
		case diag.KindRemoteRefUnloadable:
			out.audit(doc)
		case diag.KindOpenAPIMissing:
			out.SpecMissing = true
			out.add(diag.New(diag.SpecOpenAPI, diag.CodeInvalidOAS3, "", msg))
		default:
			out.add(diag.New(diag.SpecOpenAPI, diag.CodeParseException, c.Detail, msg))
		}
	}

	produced := result.Produced()
	switch {
	case len(result.Messages) > 0 && out.SpecMissing:
		out.Status = StatusSpecMissing
	case len(result.Messages) > 0:
		if produced {
			out.Status = StatusValidWithWarnings
			out.Counts.PartiallyPassed++
		} else {
			out.Status = StatusMalformed
			out.Counts.Malformed++
		}
		if level != LevelParseOnly {
			out.Counts.Failed++
		}
	case produced:
		out.Status = StatusValid
		out.Counts.Succeeded++
	default:
		out.Status = StatusParseException
		out.Counts.Failed++
		out.add(diag.New(diag.SpecOpenAPI, diag.CodeParseException, diag.UnableToRender, ""))
	}

	if !level.Surfaces() {
		out.silence()
	}
	return out
}
