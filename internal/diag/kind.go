package diag

import "strings"

type Kind int

const (
	KindOther Kind = iota
	KindSwaggerMissing
	KindOpenAPIMissing
	KindMalformedSwagger
	KindRemoteRefUnloadable
	KindSchemaRefMissing
	KindSchemaUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindSwaggerMissing:
		return "swagger-missing"
	case KindOpenAPIMissing:
		return "openapi-missing"
	case KindMalformedSwagger:
		return "malformed-swagger"
	case KindRemoteRefUnloadable:
		return "remote-ref-unloadable"
	case KindSchemaRefMissing:
		return "schema-ref-missing"
	case KindSchemaUnexpected:
		return "schema-unexpected"
	default:
		return "other"
	}
}

// Classification is what a raw checker message means for one spec path.
// Detail is the text to show the caller.
type Classification struct {
	Kind   Kind
	Detail string
}

type rule struct {
	kind  Kind
	match func(string) bool
}

var swaggerRules = []rule{
	{KindSwaggerMissing, contains(SwaggerMissing)},
	{KindMalformedSwagger, contains(MalformedSwagger)},
	{KindSchemaRefMissing, isSchemaRefMissing},
}

var openAPIRules = []rule{
	{KindRemoteRefUnloadable, contains(RemoteRefUnloadable)},
	{KindOpenAPIMissing, contains(OpenAPIMissing)},
	{KindSchemaUnexpected, contains(SchemaUnexpected)},
}

// ClassifySwagger applies the Swagger 2 rules. Schema reference paths are
// reported in their Swagger 2 form since the checker converts before
// resolving.
func ClassifySwagger(raw string) Classification {
	kind := first(swaggerRules, raw)
	switch kind {
	case KindSwaggerMissing:
		return Classification{Kind: kind, Detail: SwaggerMissing}
	case KindMalformedSwagger:
		return Classification{Kind: kind, Detail: raw}
	default:
		return Classification{Kind: kind, Detail: strings.ReplaceAll(raw, SchemaRefPath, DefinitionsRefPath)}
	}
}

// ClassifyOpenAPI applies the OpenAPI 3 rules.
func ClassifyOpenAPI(raw string) Classification {
	kind := first(openAPIRules, raw)
	switch kind {
	case KindOpenAPIMissing:
		return Classification{Kind: kind}
	case KindRemoteRefUnloadable:
		return Classification{Kind: kind, Detail: strings.TrimSpace(raw[strings.Index(raw, RemoteRefUnloadable)+len(RemoteRefUnloadable):])}
	case KindSchemaUnexpected:
		return Classification{Kind: kind, Detail: raw + schemaRefHint}
	default:
		return Classification{Kind: kind, Detail: raw}
	}
}

// IsRemoteRefFailure reports whether checker error text says a remote
// reference could not be loaded.
func IsRemoteRefFailure(text string) bool {
	return strings.Contains(text, RemoteRefUnloadable)
}

func isSchemaRefMissing(msg string) bool {
	return strings.Contains(msg, SchemaRefPath) && strings.Contains(msg, "missing")
}

func contains(fragment string) func(string) bool {
	return func(msg string) bool {
		return strings.Contains(msg, fragment)
	}
}

func first(rules []rule, msg string) Kind {
	for _, r := range rules {
		if r.match(msg) {
			return r.kind
		}
	}
	return KindOther
}
