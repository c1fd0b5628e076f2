package checker

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/refs"
	"github.com/pb33f/libopenapi"
)

// Swagger checks Swagger 2 documents by converting them to OpenAPI 3 with
// kin-openapi, resolving all references, and validating the converted model.
// Messages therefore name schema components in their OpenAPI 3 form.
type Swagger struct {
	options *Options
}

func NewSwagger(opts *Options) *Swagger {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Swagger{options: opts}
}

func (s *Swagger) Check(ctx context.Context, doc *document.Document) Result {
	return bounded(ctx, func() Result { return s.check(ctx, doc) }, aborted)
}

func (s *Swagger) check(ctx context.Context, doc *document.Document) Result {
	malformed := Result{Messages: []string{diag.MalformedSwagger}}
	if !doc.Parsed() {
		return malformed
	}
	if _, ok := doc.Field("swagger"); !ok {
		return Result{Messages: []string{msgSwaggerMissing}}
	}

	data, err := doc.JSON()
	if err != nil {
		return malformed
	}
	var doc2 openapi2.T
	if err := json.Unmarshal(data, &doc2); err != nil {
		return malformed
	}

	remote := slices.Collect(refs.Remote(doc.Root()))

	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = s.options.AllowRemoteReferences

	doc3, err := openapi2conv.ToV3WithLoader(&doc2, loader, location(doc.Path))
	if err != nil {
		msgs := messages(err, remote)
		if slices.ContainsFunc(msgs, diag.IsRemoteRefFailure) {
			return malformed
		}
		return Result{Messages: msgs}
	}

	// An empty paths object converts to nil, which the OpenAPI 3 validator
	// reads as a missing one.
	if _, ok := doc.Field("paths"); ok && doc3.Paths == nil {
		doc3.Paths = openapi3.NewPaths()
	}

	var msgs []string
	if err := doc3.Validate(ctx); err != nil {
		msgs = messages(err, remote)
	}
	return Result{Messages: msgs, Model: doc3}
}

// ParseLenient builds the Swagger 2 model with libopenapi without converting
// it. It only serves to explain a malformed result: the returned error says
// whether a remote reference was the cause.
func (s *Swagger) ParseLenient(ctx context.Context, doc *document.Document) error {
	return bounded(ctx, func() error { return s.parseLenient(doc) }, func(err error) error { return err })
}

func (s *Swagger) parseLenient(doc *document.Document) error {
	if !doc.Parsed() {
		return doc.Err()
	}
	remote := slices.Collect(refs.Remote(doc.Root()))

	ld, err := libopenapi.NewDocumentWithConfiguration(doc.Raw, documentConfig(doc, s.options))
	if err != nil {
		return errors.New(strings.Join(messages(err, remote), "; "))
	}
	if _, err := ld.BuildV2Model(); err != nil {
		return errors.New(strings.Join(messages(err, remote), "; "))
	}
	return nil
}

func location(path string) *url.URL {
	if path == "" {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &url.URL{Path: filepath.ToSlash(abs)}
}
