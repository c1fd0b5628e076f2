package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		input    string
		expected Encoding
	}{
		{`{"swagger":"2.0"}`, EncodingJSON},
		{"  \n\t{\"a\":1}", EncodingJSON},
		{"swagger: '2.0'", EncodingYAML},
		{"", EncodingYAML},
		{"[1,2]", EncodingYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Sniff([]byte(tt.input)))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"json object", `{"openapi": "3.0.0"}`, false},
		{"json with tabs", "{\n\t\"openapi\": \"3.0.0\"\n}", false},
		{"yaml mapping", "openapi: 3.0.0\ninfo:\n  title: T\n", false},
		{"unbalanced braces", `{"openapi": "3.0.0"`, true},
		{"trailing comma", `{"a": 1,}`, true},
		{"empty", "", true},
		{"scalar root", "just text", true},
		{"sequence root", "- a\n- b\n", true},
		{"broken yaml", "a: [\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrParse)
				require.Nil(t, root)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, root)
		})
	}
}

func TestDocumentField(t *testing.T) {
	doc := New([]byte("info:\n  title: Pets\n  version: 1.0.0\nswagger: \"2.0\"\npaths: {}\n"))
	require.True(t, doc.Parsed())
	require.Equal(t, EncodingYAML, doc.Encoding)

	title, ok := doc.Text("info", "title")
	require.True(t, ok)
	require.Equal(t, "Pets", title)

	_, ok = doc.Field("info", "contact")
	require.False(t, ok)

	text, ok := doc.Text("paths")
	require.True(t, ok)
	require.Empty(t, text)

	_, ok = doc.Field("swagger", "nested")
	require.False(t, ok)
}

func TestDocumentJSON(t *testing.T) {
	t.Run("json passthrough", func(t *testing.T) {
		raw := []byte(`{"swagger":"2.0"}`)
		data, err := New(raw).JSON()
		require.NoError(t, err)
		require.Equal(t, raw, data)
	})

	t.Run("yaml converted", func(t *testing.T) {
		data, err := New([]byte("swagger: \"2.0\"\ninfo:\n  title: T\n")).JSON()
		require.NoError(t, err)
		require.JSONEq(t, `{"swagger":"2.0","info":{"title":"T"}}`, string(data))
	})

	t.Run("non string keys", func(t *testing.T) {
		data, err := New([]byte("responses:\n  200:\n    description: ok\n  default:\n    description: err\n")).JSON()
		require.NoError(t, err)
		require.JSONEq(t, `{"responses":{"200":{"description":"ok"},"default":{"description":"err"}}}`, string(data))
	})

	t.Run("typed scalars", func(t *testing.T) {
		yml := "a: 1\nb: 1.5\nc: true\nd: ~\ne: .inf\nf: \"2\"\ng: [x, 2]\nh: 2024-01-02\n"
		data, err := New([]byte(yml)).JSON()
		require.NoError(t, err)
		require.JSONEq(t, `{"a":1,"b":1.5,"c":true,"d":null,"e":".inf","f":"2","g":["x",2],"h":"2024-01-02"}`, string(data))
	})

	t.Run("keeps key order and follows aliases", func(t *testing.T) {
		yml := "z: &base\n  k: v\na: *base\n"
		data, err := New([]byte(yml)).JSON()
		require.NoError(t, err)
		require.Equal(t, `{"z":{"k":"v"},"a":{"k":"v"}}`, string(data))
	})

	t.Run("unparseable", func(t *testing.T) {
		_, err := New([]byte("{")).JSON()
		require.ErrorIs(t, err, ErrParse)
	})
}
