package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kolah/oasgate/internal/diag"
	"github.com/kolah/oasgate/internal/document"
	"github.com/kolah/oasgate/internal/refs"
	"github.com/kolah/oasgate/internal/stats"
	"github.com/kolah/oasgate/internal/validate"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func messages(recs []map[string]any) []string {
	var out []string
	for _, r := range recs {
		out = append(out, r["msg"].(string))
	}
	return out
}

func TestOutcomeDiagnosticsAndStatus(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "json", slog.LevelInfo)

	r.Outcome(validate.Outcome{
		Spec:   diag.SpecSwagger,
		Status: validate.StatusValidWithWarnings,
		Diagnostics: []diag.Diagnostic{
			diag.New(diag.SpecSwagger, diag.CodeParseException, "#/definitions/Pet is missing", "#/components/schemas/Pet is missing"),
		},
	})

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	require.Equal(t, "ERROR", recs[0]["level"])
	require.Equal(t, "Invalid Swagger, Error Code: 900754, Error: Error while parsing OpenAPI definition, Swagger Error: #/definitions/Pet is missing", recs[0]["msg"])
	require.EqualValues(t, 900754, recs[0]["code"])
	require.Equal(t, "#/components/schemas/Pet is missing", recs[0]["raw"])
	require.Equal(t, "Swagger passed with errors, using may lead to functionality issues.", recs[1]["msg"])
}

func TestOutcomeRemoteReferences(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "json", slog.LevelInfo)

	r.Outcome(validate.Outcome{
		Spec:        diag.SpecOpenAPI,
		Status:      validate.StatusMalformed,
		RemoteAudit: true,
		RemoteRefs:  []refs.Pointer{{Value: "http://ex.com/y.json", Quoted: true, Line: 1, Column: 9}},
	})

	require.Equal(t, []string{
		"Validate the following remote references and make sure that they are valid and accessible:",
		`"http://ex.com/y.json"`,
		"Malformed OpenAPI, Please fix the listed issues before proceeding",
	}, messages(records(t, &buf)))
}

func TestOutcomeGatewayAcceptance(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "json", slog.LevelInfo)

	r.Outcome(validate.Outcome{Spec: diag.SpecSwagger, Status: validate.StatusValid, GatewayAccepted: true})
	require.Equal(t, []string{"Swagger file is valid", "Swagger file will be accepted by the gateway"}, messages(records(t, &buf)))
}

func TestSpecMissingIsDebugOnly(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "json", slog.LevelInfo)

	r.Outcome(validate.Outcome{Spec: diag.SpecOpenAPI, Status: validate.StatusSpecMissing, SpecMissing: true})
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestBracketAndParseFailure(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "json", slog.LevelInfo)

	v := document.Verdict{Version: document.OpenAPI3, Name: "Pets", Parsed: true}
	r.Begin(v)
	r.End(v)
	r.ParseFailure(errors.New("unparseable definition: invalid json"))

	recs := records(t, &buf)
	require.Len(t, recs, 4)
	require.Equal(t, "Pets", recs[0]["name"])
	require.Equal(t, "openapi3", recs[0]["version"])
	require.Equal(t, "Pets", recs[1]["name"])
	require.Equal(t, "unparseable definition: invalid json", recs[2]["error"])
	require.Equal(t, "structural-parse-failure", recs[3]["outcome"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "text", slog.LevelInfo)
	r.FileStart("specs/pet.yaml")
	require.Contains(t, buf.String(), "file=specs/pet.yaml")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, stats.Counts{Total: 3, Succeeded: 1, Failed: 2, Malformed: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Summary ---")
	require.Contains(t, out, "Total Files Processed: 3")
	require.Contains(t, out, "Total Successful Files Count 1")
	require.Contains(t, out, "Total Failed Files Count: 2")
	require.Contains(t, out, "Total Malformed Swagger File Count: 1")
	require.Contains(t, out, "Total Partially Passed File Count: 0")
	require.True(t, strings.HasSuffix(out, "\n"))
}
