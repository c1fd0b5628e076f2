package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		version    Version
		docName    string
		wantParsed bool
	}{
		{"swagger only", `{"swagger": "2.0"}`, Swagger2, "", true},
		{"openapi only", `{"openapi": "3.0.0"}`, OpenAPI3, "", true},
		{"openapi 3.1 yaml", "openapi: 3.1.0\ninfo:\n  title: Pets\n", OpenAPI3, "Pets", true},
		{"neither", `{"foo": "bar"}`, Undetermined, "", true},
		{"openapi wrong prefix", `{"openapi": "2.0"}`, Undetermined, "", true},
		{"openapi wrong prefix with swagger", `{"openapi": "2.0", "swagger": "2.0"}`, Swagger2, "", true},
		{"swagger any value", `{"swagger": null, "info": {"title": "T"}}`, Swagger2, "T", true},
		{"openapi wins over swagger", `{"swagger": "2.0", "openapi": "3.0.3"}`, OpenAPI3, "", true},
		{"info without title", `{"swagger": "2.0", "info": {}}`, Swagger2, "", true},
		{"info not an object", `{"swagger": "2.0", "info": "x"}`, Swagger2, "", true},
		{"unbalanced", `{"swagger": "2.0"`, Undetermined, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(New([]byte(tt.input)))
			require.Equal(t, tt.version, v.Version)
			require.Equal(t, tt.docName, v.Name)
			require.Equal(t, tt.wantParsed, v.Parsed)
			if tt.wantParsed {
				require.NoError(t, v.Err)
			} else {
				require.ErrorIs(t, v.Err, ErrParse)
			}
		})
	}
}

func TestClassifyIsRepeatable(t *testing.T) {
	doc := New([]byte(`{"openapi": "3.0.0", "info": {"title": "Repeat"}}`))
	first := Classify(doc)
	second := Classify(doc)
	require.Equal(t, first, second)
}
