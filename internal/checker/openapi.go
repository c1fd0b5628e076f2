package checker

import (
	"context"
	"slices"
	"strings"

	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/refs"
	"github.com/pb33f/libopenapi"
	validator "github.com/pb33f/libopenapi-validator"
	validatorErrors "github.com/pb33f/libopenapi-validator/errors"
	"github.com/pb33f/libopenapi/datamodel"
)

// OpenAPI checks OpenAPI 3 documents with libopenapi, resolving every
// reference, and runs the document schema validator on the result.
type OpenAPI struct {
	options *Options
}

func NewOpenAPI(opts *Options) *OpenAPI {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &OpenAPI{options: opts}
}

func (o *OpenAPI) Check(ctx context.Context, doc *document.Document) Result {
	return bounded(ctx, func() Result { return o.check(doc) }, aborted)
}

func (o *OpenAPI) check(doc *document.Document) Result {
	if !doc.Parsed() {
		return Result{Messages: []string{doc.Err().Error()}}
	}
	if version, _ := doc.Text("openapi"); !strings.HasPrefix(version, "3.") {
		return Result{Messages: []string{msgOpenAPIMissing}}
	}

	remote := slices.Collect(refs.Remote(doc.Root()))

	// libopenapi-validator reads the specification through a generic decode
	// that drops YAML mappings with non-string keys, so the model is built
	// from the JSON rendering.
	data, err := doc.JSON()
	if err != nil {
		data = doc.Raw
	}

	ld, err := libopenapi.NewDocumentWithConfiguration(data, documentConfig(doc, o.options))
	if err != nil {
		return Result{Messages: messages(err, remote)}
	}

	model, err := ld.BuildV3Model()
	msgs := messages(err, remote)
	if model == nil {
		return Result{Messages: msgs}
	}

	v, errs := validator.NewValidator(ld)
	if len(errs) > 0 {
		for _, e := range errs {
			msgs = append(msgs, message(e, remote))
		}
	} else if valid, verrs := v.ValidateDocument(); !valid {
		for _, ve := range verrs {
			msgs = append(msgs, validationMessages(ve)...)
		}
	}

	return Result{Messages: msgs, Model: model}
}

func documentConfig(doc *document.Document, opts *Options) *datamodel.DocumentConfiguration {
	return &datamodel.DocumentConfiguration{
		BasePath:              baseDir(doc.Path),
		AllowFileReferences:   true,
		AllowRemoteReferences: opts.AllowRemoteReferences,
		Logger:                opts.logger(),
	}
}

// validationMessages returns one message per schema failure, falling back
// to the summary when the validator gave no detail.
func validationMessages(ve *validatorErrors.ValidationError) []string {
	if len(ve.SchemaValidationErrors) == 0 {
		if ve.Reason == "" || ve.Reason == ve.Message {
			return []string{ve.Message}
		}
		return []string{ve.Message + ": " + ve.Reason}
	}

	out := make([]string, 0, len(ve.SchemaValidationErrors))
	for _, f := range ve.SchemaValidationErrors {
		msg := f.Reason
		if loc := schemaLocation(f); loc != "" {
			msg = loc + ": " + msg
		}
		out = append(out, msg)
	}
	return out
}

func schemaLocation(f *validatorErrors.SchemaValidationFailure) string {
	switch {
	case f.FieldPath != "":
		return f.FieldPath
	case f.Location != "":
		return f.Location
	default:
		return f.DeepLocation
	}
}
