package document

import "strings"

type Version int

const (
	Undetermined Version = iota
	Swagger2
	OpenAPI3
)

func (v Version) String() string {
	switch v {
	case Swagger2:
		return "swagger2"
	case OpenAPI3:
		return "openapi3"
	default:
		return "undetermined"
	}
}

// Verdict is the result of classifying one document.
//
// Err is set when the document could not be parsed at all; Name is only
// meaningful when Parsed is true. Callers count the parse failure, Classify
// itself has no side effects.
type Verdict struct {
	Version Version
	Name    string
	Parsed  bool
	Err     error
}

// Classify decides which specification a document claims to follow.
func Classify(doc *Document) Verdict {
	if !doc.Parsed() {
		return Verdict{Version: Undetermined, Err: doc.Err()}
	}

	v := Verdict{Version: Undetermined, Name: doc.Name(), Parsed: true}

	if openapi, ok := doc.Text("openapi"); ok && strings.HasPrefix(openapi, "3.") {
		v.Version = OpenAPI3
		return v
	}
	if _, ok := doc.Field("swagger"); ok {
		v.Version = Swagger2
	}
	return v
}

// Name returns info.title, or an empty string when either is absent.
func (d *Document) Name() string {
	title, _ := d.Text("info", "title")
	return title
}
