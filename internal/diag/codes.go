// Package diag holds the gateway diagnostic catalogue and the rules that map
// free-text checker messages onto it.
package diag

type Code int

// Downstream consumers key off these values; do not renumber.
const (
	CodeParseException Code = 900754
	CodeInvalidOAS2    Code = 900761
	CodeInvalidOAS3    Code = 900762
)

func (c Code) Message() string {
	switch c {
	case CodeParseException:
		return "Error while parsing OpenAPI definition"
	case CodeInvalidOAS2:
		return "Invalid OpenAPI V2 definition found"
	case CodeInvalidOAS3:
		return "Invalid OpenAPI V3 definition found"
	default:
		return "Unknown error"
	}
}

// Checker message fragments and fixed texts.
const (
	SwaggerMissing          = "swagger is missing"
	OpenAPIMissing          = "openapi is missing"
	SwaggerOrOpenAPIMissing = "attribute swagger or openapi should present"
	MalformedSwagger        = "malformed or unreadable swagger supplied"
	RemoteRefUnloadable     = "Unable to load RELATIVE ref:"
	SchemaUnexpected        = "schema is unexpected"

	UnableToRender = "Unable to render this definition, The provided definition does not specify a valid version field."

	SchemaRefPath      = "#/components/schemas/"
	DefinitionsRefPath = "#/definitions/"

	schemaRefHint = ". Please verify whether the schema object is adhering to the OpenAPI Specification. " +
		"Make sure that the reference object is of format $ref: '#/components/schemas/{schemaName}'"
)
