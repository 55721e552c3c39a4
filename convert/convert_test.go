package convert

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab-open/datachain/registry"
)

func decodeDocuments(t *testing.T, out []byte) []Document {
	t.Helper()
	var docs []Document
	require.NoError(t, json.Unmarshal(out, &docs))
	return docs
}

// --- Builtin registry ---

func TestBuiltin_RegistersAllFormats(t *testing.T) {
	t.Parallel()

	reg := Builtin(nil)

	assert.Equal(t, []string{"csv", "json", "yaml", "text"}, reg.ListAll())
	assert.Equal(t, []string{"csv", "json", "yaml", "text"}, reg.ListByTag("format"))
	assert.Equal(t, []string{"csv", "json", "yaml", "text"}, reg.ListByType(Type))
}

func TestBuiltin_EndToEnd(t *testing.T) {
	t.Parallel()

	reg := Builtin(nil)

	assert.Equal(t, []string{"json"}, reg.Search("json", registry.FieldName))
	assert.Equal(t, []string{"csv"}, reg.ListByTag("csv"))

	c, err := Create(reg, "csv")
	require.NoError(t, err)
	assert.IsType(t, &CSVConverter{}, c)
	assert.Equal(t, "csv", c.Format())

	rec, err := reg.GetRecord("yaml")
	require.NoError(t, err)
	assert.Equal(t, "application/yaml", rec.Metadata["media_type"])
}

func TestCreate_NotAConverter(t *testing.T) {
	t.Parallel()

	reg := registry.New("test")
	require.NoError(t, reg.Register("number", func() int { return 42 }))

	_, err := Create(reg, "number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not produce a Converter")
}

func TestCreate_NotFound(t *testing.T) {
	t.Parallel()

	reg := registry.New("test")
	_, err := Create(reg, "missing")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

// --- CSVConverter ---

func TestCSVConverter_Convert(t *testing.T) {
	t.Parallel()

	c := NewCSVConverter()
	out, err := c.Convert(context.Background(), []byte("name,age\nalice,30\nbob,25\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 2)
	assert.Equal(t, "alice 30", docs[0].Content)
	assert.Equal(t, map[string]any{"name": "alice", "age": "30"}, docs[0].Fields)
	assert.Equal(t, map[string]any{"name": "bob", "age": "25"}, docs[1].Fields)
	assert.NotEmpty(t, docs[0].ID)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
}

func TestCSVConverter_CustomDelimiter(t *testing.T) {
	t.Parallel()

	c := NewCSVConverter(WithDelimiter(';'))
	out, err := c.Convert(context.Background(), []byte("a;b\n1;2\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, docs[0].Fields)
}

func TestCSVConverter_WithoutHeader(t *testing.T) {
	t.Parallel()

	c := NewCSVConverter(WithoutHeader())
	out, err := c.Convert(context.Background(), []byte("1,2\n3,4\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 2)
	assert.Equal(t, map[string]any{"col_0": "1", "col_1": "2"}, docs[0].Fields)
}

func TestCSVConverter_Empty(t *testing.T) {
	t.Parallel()

	c := NewCSVConverter()
	out, err := c.Convert(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, decodeDocuments(t, out))
}

// --- JSONConverter ---

func TestJSONConverter_Array(t *testing.T) {
	t.Parallel()

	c := NewJSONConverter()
	out, err := c.Convert(context.Background(), []byte(`[{"a":1},{"a":2}]`))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 2)
	assert.Equal(t, map[string]any{"a": float64(1)}, docs[0].Fields)
	assert.JSONEq(t, `{"a":1}`, docs[0].Content)
}

func TestJSONConverter_Scalar(t *testing.T) {
	t.Parallel()

	c := NewJSONConverter()
	out, err := c.Convert(context.Background(), []byte(`"hello"`))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, `"hello"`, docs[0].Content)
	assert.Nil(t, docs[0].Fields)
}

func TestJSONConverter_Invalid(t *testing.T) {
	t.Parallel()

	c := NewJSONConverter()
	_, err := c.Convert(context.Background(), []byte(`{broken`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing json")
}

// --- YAMLConverter ---

func TestYAMLConverter_Sequence(t *testing.T) {
	t.Parallel()

	c := NewYAMLConverter()
	out, err := c.Convert(context.Background(), []byte("- name: alice\n- name: bob\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 2)
	assert.Equal(t, map[string]any{"name": "alice"}, docs[0].Fields)
}

func TestYAMLConverter_Mapping(t *testing.T) {
	t.Parallel()

	c := NewYAMLConverter()
	out, err := c.Convert(context.Background(), []byte("name: alice\nage: 30\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, "alice", docs[0].Fields["name"])
}

func TestYAMLConverter_Invalid(t *testing.T) {
	t.Parallel()

	c := NewYAMLConverter()
	_, err := c.Convert(context.Background(), []byte("a: [1,\n"))
	require.Error(t, err)
}

// --- TextConverter ---

func TestTextConverter_Paragraphs(t *testing.T) {
	t.Parallel()

	c := NewTextConverter()
	out, err := c.Convert(context.Background(), []byte("first paragraph\nstill first\n\nsecond paragraph\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 2)
	assert.Equal(t, "first paragraph\nstill first", docs[0].Content)
	assert.Equal(t, "second paragraph", docs[1].Content)
}

func TestTextConverter_PerLine(t *testing.T) {
	t.Parallel()

	c := NewTextConverter(WithLineDocuments())
	out, err := c.Convert(context.Background(), []byte("one\ntwo\n\nthree\n"))
	require.NoError(t, err)

	docs := decodeDocuments(t, out)
	require.Len(t, docs, 3)
	assert.Equal(t, "one", docs[0].Content)
}

// --- context handling ---

func TestConverters_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, c := range []Converter{
		NewCSVConverter(),
		NewJSONConverter(),
		NewYAMLConverter(),
		NewTextConverter(),
	} {
		_, err := c.Convert(ctx, []byte("x"))
		assert.ErrorIs(t, err, context.Canceled, "format %s", c.Format())
	}
}
