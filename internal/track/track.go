// Package track holds the resolved benchmark track model produced by the reader.
//
// A Track is built once from a single document and is not mutated afterwards.
// Derived tracks (see package testmode) are independent copies.
package track

type Track struct {
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	Description      string          `json:"description"`
	SourceRootURL    string          `json:"source_root_url,omitempty"`
	Indices          []Index         `json:"indices"`
	Templates        []IndexTemplate `json:"templates"`
	Operations       []Operation     `json:"operations"`
	Challenges       []Challenge     `json:"challenges"`
}

type Index struct {
	Name        string `json:"name"`
	AutoManaged bool   `json:"auto_managed"`
	Types       []Type `json:"types"`
}

type Type struct {
	Name              string `json:"name"`
	DocumentArchive   string `json:"document_archive"`
	DocumentFile      string `json:"document_file"`
	DocumentCount     int64  `json:"document_count"`
	CompressedBytes   int64  `json:"compressed_bytes"`
	UncompressedBytes int64  `json:"uncompressed_bytes"`
	MappingFile       string `json:"mapping_file"`
}

// IndexTemplate is an index template applied to every index matching Pattern.
type IndexTemplate struct {
	Name         string `json:"name"`
	Pattern      string `json:"pattern"`
	TemplateFile string `json:"template_file"`
}

// Operation is opaque to the loader: Type and Params are interpreted by the execution engine.
type Operation struct {
	Name   string         `json:"name"`
	Type   string         `json:"operation_type"`
	Params map[string]any `json:"params"`
	Meta   map[string]any `json:"meta"`
}

type Challenge struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Default       bool            `json:"default"`
	Meta          map[string]any  `json:"meta"`
	IndexSettings map[string]any  `json:"index_settings"`
	Schedule      []ScheduleEntry `json:"schedule"`
}

func (t *Track) FindChallenge(name string) (*Challenge, bool) {
	for i := range t.Challenges {
		if t.Challenges[i].Name == name {
			return &t.Challenges[i], true
		}
	}
	return nil, false
}

// DefaultChallenge returns the challenge marked as default, or nil for a track without challenges.
func (t *Track) DefaultChallenge() *Challenge {
	for i := range t.Challenges {
		if t.Challenges[i].Default {
			return &t.Challenges[i]
		}
	}
	return nil
}

func (t *Track) FindOperation(name string) (*Operation, bool) {
	for i := range t.Operations {
		if t.Operations[i].Name == name {
			return &t.Operations[i], true
		}
	}
	return nil, false
}

// ChallengeNames returns the challenge names in declaration order.
func (t *Track) ChallengeNames() []string {
	names := make([]string, 0, len(t.Challenges))
	for _, c := range t.Challenges {
		names = append(names, c.Name)
	}
	return names
}

// Clone returns a deep copy of the operation.
func (o Operation) Clone() Operation {
	return Operation{
		Name:   o.Name,
		Type:   o.Type,
		Params: CloneMap(o.Params),
		Meta:   CloneMap(o.Meta),
	}
}

// CloneMap copies m recursively. Nested maps and slices are copied, scalars are shared.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
