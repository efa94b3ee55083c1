package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/aide/pkg/core"
)

// MarshalDocument encodes a collection document the way it is kept on disk:
// 4-space indentation and non-ASCII text written verbatim.
func MarshalDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Table is the flat exchange representation of a collection.
// Every cell is text; the header names the columns in order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Record returns row i as a column -> value map. Missing trailing cells are empty.
func (t *Table) Record(i int) map[string]string {
	row := t.Rows[i]
	fields := make(map[string]string, len(t.Columns))
	for j, col := range t.Columns {
		if j < len(row) {
			fields[col] = row[j]
		} else {
			fields[col] = ""
		}
	}
	return fields
}

// Has reports whether the table carries the named column.
func (t *Table) Has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Serializer defines how to read and write a specific exchange format.
type Serializer interface {
	// Decode reads a table from r. When a row is malformed, Decode returns the
	// rows read before it together with the error.
	Decode(r io.Reader) (*Table, error)
	// Encode converts the table to bytes.
	Encode(t *Table) ([]byte, error)
}

// DefaultSerializers returns the standard set of exchange serializers.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".csv":  NewCSVSerializer(),
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// SerializerFor picks the serializer matching the extension of path.
func SerializerFor(path string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	s, ok := DefaultSerializers()[ext]
	if !ok {
		return nil, core.Invalid("format", ext, fmt.Errorf("supported: .csv, .json, .yaml"))
	}
	return s, nil
}

// ErrMissingHeader is returned when an exchange file has no header row.
var ErrMissingHeader = errors.New("missing header row")

// --- CSV Serializer ---

// CSVSerializer handles comma separated files with a mandatory header row.
type CSVSerializer struct{}

// NewCSVSerializer creates a CSV serializer using the comma separator.
func NewCSVSerializer() *CSVSerializer { return &CSVSerializer{} }

// Decode reads the header row and then every record row.
func (s *CSVSerializer) Decode(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", core.ErrValidation, ErrMissingHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read csv header: %w", core.ErrValidation, err)
	}

	// Excel likes to prepend a BOM to UTF-8 exports.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Columns: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return t, fmt.Errorf("%w: %w", core.ErrValidation, err)
		}
		t.Rows = append(t.Rows, row)
	}
}

// Encode writes the header followed by one line per row.
func (s *CSVSerializer) Encode(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- JSON Serializer ---

// JSONSerializer handles a JSON array of flat objects.
// Encoded cells are always strings; decoded scalars of any type are accepted.
type JSONSerializer struct{}

// NewJSONSerializer creates a JSON array serializer.
func NewJSONSerializer() *JSONSerializer { return &JSONSerializer{} }

// Decode reads an array of objects. Columns appear in first-seen order.
func (s *JSONSerializer) Decode(r io.Reader) (*Table, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var objects []map[string]any
	if err := decoder.Decode(&objects); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", core.ErrValidation, ErrMissingHeader)
		}
		return nil, fmt.Errorf("%w: invalid json: %w", core.ErrValidation, err)
	}

	t := &Table{}
	seen := make(map[string]bool)
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				t.Columns = append(t.Columns, k)
			}
		}
	}
	for _, obj := range objects {
		row := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			row[j] = MarshalCellValue(obj[col])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Encode writes one object per row with keys in column order.
func (s *JSONSerializer) Encode(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    {")
		for j, col := range t.Columns {
			if j > 0 {
				buf.WriteString(",")
			}
			key, err := marshalString(col)
			if err != nil {
				return nil, err
			}
			val, err := marshalString(row[j])
			if err != nil {
				return nil, err
			}
			buf.WriteString("\n        ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
		}
		buf.WriteString("\n    }")
	}
	if len(t.Rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles a YAML sequence of flat mappings.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a YAML sequence serializer with 2-space indentation.
func NewYAMLSerializer() *YAMLSerializer { return &YAMLSerializer{} }

// Decode reads a sequence of mappings. Null values become empty cells.
func (s *YAMLSerializer) Decode(r io.Reader) (*Table, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", core.ErrValidation, ErrMissingHeader)
		}
		return nil, fmt.Errorf("%w: invalid yaml: %w", core.ErrValidation, err)
	}

	seq := &root
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: yaml document must be a list of records", core.ErrValidation)
	}

	t := &Table{}
	index := make(map[string]int)
	var records []map[string]string
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return t, fmt.Errorf("%w: line %d: record must be a mapping", core.ErrValidation, item.Line)
		}
		rec := make(map[string]string, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i].Value, item.Content[i+1]
			if _, ok := index[key]; !ok {
				index[key] = len(t.Columns)
				t.Columns = append(t.Columns, key)
			}
			if val.Kind != yaml.ScalarNode {
				return t, fmt.Errorf("%w: line %d: field %q must be a scalar", core.ErrValidation, val.Line, key)
			}
			if val.ShortTag() != "!!null" {
				rec[key] = val.Value
			}
		}
		records = append(records, rec)
	}
	for _, rec := range records {
		row := make([]string, len(t.Columns))
		for col, j := range index {
			row[j] = rec[col]
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Encode writes a sequence of mappings with every value tagged as a string.
func (s *YAMLSerializer) Encode(t *Table) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for j, col := range t.Columns {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: col},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[j]},
			)
		}
		seq.Content = append(seq.Content, m)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(seq); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- Helpers ---

// MarshalCellValue converts a decoded scalar to its cell text.
// Null becomes the empty string; complex values are kept as JSON.
func MarshalCellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
