// Package checker adapts third-party OpenAPI parsers to the message list
// the validators classify.
package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/refs"
	"github.com/pb33f/libopenapi/index"
)

// Result is what a conformance check produced: free-text messages and the
// parsed model, or a nil Model when nothing usable came out.
type Result struct {
	Messages []string
	Model    any
}

func (r Result) Produced() bool {
	return r.Model != nil
}

// Options configures reference resolution for both checkers.
type Options struct {
	AllowRemoteReferences bool
	// Logger receives libopenapi's own records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		AllowRemoteReferences: true,
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

const (
	msgSwaggerMissing = "attribute " + diag.SwaggerMissing
	msgOpenAPIMissing = "attribute " + diag.OpenAPIMissing
)

// schemaRefPattern matches a schema pointer in double quotes (kin-openapi)
// or backticks (libopenapi).
var schemaRefPattern = regexp.MustCompile("[\"`](" + regexp.QuoteMeta(diag.SchemaRefPath) + "[^\"`#/]+)[\"`]")

var unresolvedPhrases = []string{"failed to resolve", "not found", "unresolved", "it's missing", "does not exist"}

// bounded runs fn and gives up when ctx ends first. fn keeps running in the
// background in that case; parsers offer no way to interrupt them.
func bounded[T any](ctx context.Context, fn func() T, abort func(error) T) T {
	if ctx.Done() == nil {
		return fn()
	}
	ch := make(chan T, 1)
	go func() {
		ch <- fn()
	}()
	select {
	case v := <-ch:
		return v
	case <-ctx.Done():
		return abort(context.Cause(ctx))
	}
}

func aborted(err error) Result {
	return Result{Messages: []string{fmt.Sprintf("validation aborted: %v", err)}}
}

// messages splits err into one message per underlying error.
func messages(err error, remote []refs.Pointer) []string {
	var out []string
	for _, e := range split(err) {
		out = append(out, message(e, remote))
	}
	return out
}

// message renders one parser error. libopenapi reports a reference it could
// not locate as an index error whose text omits the reference itself, so the
// reference is read from the node the error points at.
func message(err error, remote []refs.Pointer) string {
	var ie *index.IndexingError
	if errors.As(err, &ie) {
		if ref := indexedRef(ie); ref != "" {
			switch {
			case !strings.HasPrefix(ref, refs.LocalPrefix):
				return diag.RemoteRefUnloadable + " " + ref
			case strings.HasPrefix(ref, diag.SchemaRefPath):
				return ref + " is missing"
			}
		}
	}
	return normalize(err.Error(), remote)
}

func indexedRef(ie *index.IndexingError) string {
	n := ie.Node
	if n == nil {
		return ""
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == refs.Key {
			return n.Content[i+1].Value
		}
	}
	return ""
}

func split(err error) []error {
	if err == nil {
		return nil
	}
	var inner []error
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		inner = e.Unwrap()
	case openapi3.MultiError:
		inner = e
	default:
		return []error{err}
	}
	var out []error
	for _, ie := range inner {
		out = append(out, split(ie)...)
	}
	return out
}

// normalize rewrites parser error text into the phrases the classifier
// recognises: unreachable remote references and missing schema components.
func normalize(msg string, remote []refs.Pointer) string {
	for _, p := range remote {
		if p.Quoted && p.Value != "" && strings.Contains(msg, p.Value) {
			return diag.RemoteRefUnloadable + " " + p.Value
		}
	}
	if m := schemaRefPattern.FindStringSubmatch(msg); m != nil {
		if slices.ContainsFunc(unresolvedPhrases, func(p string) bool { return strings.Contains(msg, p) }) {
			return m[1] + " is missing"
		}
	}
	return msg
}

func baseDir(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}
