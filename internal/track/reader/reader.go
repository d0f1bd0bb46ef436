// Package reader builds a validated track.Track from a parsed track document.
package reader

import (
	"maps"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

const (
	keyShortDescription = "short-description"
	keyDescription      = "description"
	keyDataURL          = "data-url"
	keyMeta             = "meta"
)

var compressionSuffixes = []string{".tar.gz", ".tar.bz2", ".tgz", ".bz2", ".gz", ".zip", ".zst"}

// Reader is stateless and safe for concurrent use.
type Reader struct{}

func New() *Reader {
	return &Reader{}
}

// Read validates doc and resolves all defaults. mappingDir and dataDir qualify the
// mapping, template and document file names declared in the track.
// Any violation is reported as a *track.TrackSyntaxError.
func (r *Reader) Read(name string, doc map[string]any, mappingDir, dataDir string) (*track.Track, error) {
	tr := &trackReader{
		fields:     fields{trackName: name},
		mappingDir: mappingDir,
		dataDir:    dataDir,
	}
	return tr.read(normalizeLegacyMeta(doc))
}

type trackReader struct {
	fields
	mappingDir string
	dataDir    string
}

// normalizeLegacyMeta lifts track info from the legacy "meta" block to the top level.
// Top-level values win.
func normalizeLegacyMeta(doc map[string]any) map[string]any {
	meta, ok := doc[keyMeta].(map[string]any)
	if !ok {
		return doc
	}
	out := maps.Clone(doc)
	for _, key := range []string{keyShortDescription, keyDescription, keyDataURL} {
		if _, exists := out[key]; exists {
			continue
		}
		if v, ok := meta[key]; ok {
			out[key] = v
		}
	}
	return out
}

func (r *trackReader) read(doc map[string]any) (*track.Track, error) {
	shortDescription, err := r.str(doc, keyShortDescription, "", true)
	if err != nil {
		return nil, err
	}
	description, err := r.str(doc, keyDescription, "", true)
	if err != nil {
		return nil, err
	}
	sourceRootURL, err := r.str(doc, keyDataURL, "", false)
	if err != nil {
		return nil, err
	}

	indices, err := r.readIndices(doc)
	if err != nil {
		return nil, err
	}
	templates, err := r.readTemplates(doc)
	if err != nil {
		return nil, err
	}
	operations, err := r.readOperations(doc)
	if err != nil {
		return nil, err
	}
	challenges, err := r.readChallenges(doc, operations)
	if err != nil {
		return nil, err
	}

	return &track.Track{
		Name:             r.trackName,
		ShortDescription: shortDescription,
		Description:      description,
		SourceRootURL:    sourceRootURL,
		Indices:          indices,
		Templates:        templates,
		Operations:       operations,
		Challenges:       challenges,
	}, nil
}

func (r *trackReader) readIndices(doc map[string]any) ([]track.Index, error) {
	specs, err := r.list(doc, "indices", "", false)
	if err != nil {
		return nil, err
	}

	indices := make([]track.Index, 0, len(specs))
	for i, raw := range specs {
		spec, err := r.element(raw, "indices", i)
		if err != nil {
			return nil, err
		}
		name, err := r.str(spec, "name", "indices", true)
		if err != nil {
			return nil, err
		}
		autoManaged, err := r.boolean(spec, "auto-managed", name, true)
		if err != nil {
			return nil, err
		}
		// user managed indices carry no document or mapping metadata
		typeSpecs, err := r.list(spec, "types", name, autoManaged)
		if err != nil {
			return nil, err
		}

		types := make([]track.Type, 0, len(typeSpecs))
		for j, rawType := range typeSpecs {
			typeSpec, err := r.element(rawType, path(name, "types"), j)
			if err != nil {
				return nil, err
			}
			t, err := r.readType(typeSpec)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}

		indices = append(indices, track.Index{Name: name, AutoManaged: autoManaged, Types: types})
	}
	return indices, nil
}

func (r *trackReader) readType(spec map[string]any) (track.Type, error) {
	name, err := r.str(spec, "name", "types", true)
	if err != nil {
		return track.Type{}, err
	}
	documents, err := r.str(spec, "documents", name, true)
	if err != nil {
		return track.Type{}, err
	}
	docCount, err := r.count(spec, "document-count", name)
	if err != nil {
		return track.Type{}, err
	}
	compressed, err := r.count(spec, "compressed-bytes", name)
	if err != nil {
		return track.Type{}, err
	}
	uncompressed, err := r.count(spec, "uncompressed-bytes", name)
	if err != nil {
		return track.Type{}, err
	}
	mapping, err := r.str(spec, "mapping", name, true)
	if err != nil {
		return track.Type{}, err
	}

	archive := filepath.Join(r.dataDir, documents)
	return track.Type{
		Name:              name,
		DocumentArchive:   archive,
		DocumentFile:      stripCompression(archive),
		DocumentCount:     docCount,
		CompressedBytes:   compressed,
		UncompressedBytes: uncompressed,
		MappingFile:       filepath.Join(r.mappingDir, mapping),
	}, nil
}

func stripCompression(file string) string {
	for _, suffix := range compressionSuffixes {
		if strings.HasSuffix(file, suffix) {
			return strings.TrimSuffix(file, suffix)
		}
	}
	return file
}

func (r *trackReader) readTemplates(doc map[string]any) ([]track.IndexTemplate, error) {
	specs, err := r.list(doc, "templates", "", false)
	if err != nil {
		return nil, err
	}

	templates := make([]track.IndexTemplate, 0, len(specs))
	for i, raw := range specs {
		spec, err := r.element(raw, "templates", i)
		if err != nil {
			return nil, err
		}
		name, err := r.str(spec, "name", "templates", true)
		if err != nil {
			return nil, err
		}
		pattern, err := r.str(spec, "index-pattern", name, true)
		if err != nil {
			return nil, err
		}
		file, err := r.str(spec, "template", name, true)
		if err != nil {
			return nil, err
		}
		templates = append(templates, track.IndexTemplate{
			Name:         name,
			Pattern:      pattern,
			TemplateFile: filepath.Join(r.mappingDir, file),
		})
	}
	return templates, nil
}

func (r *trackReader) readOperations(doc map[string]any) ([]track.Operation, error) {
	specs, err := r.list(doc, "operations", "", false)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(specs))
	operations := make([]track.Operation, 0, len(specs))
	for i, raw := range specs {
		spec, err := r.element(raw, "operations", i)
		if err != nil {
			return nil, err
		}
		name, err := r.str(spec, "name", "operations", true)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, r.errorf("Duplicate operation with name '%s'.", name)
		}
		seen[name] = true

		opType, err := r.str(spec, "operation-type", name, true)
		if err != nil {
			return nil, err
		}
		meta, err := r.object(spec, keyMeta, name)
		if err != nil {
			return nil, err
		}

		operations = append(operations, track.Operation{
			Name:   name,
			Type:   opType,
			Params: remaining(spec, "name", "operation-type", keyMeta),
			Meta:   meta,
		})
	}
	return operations, nil
}

// remaining copies every entry of spec except the given keys.
func remaining(spec map[string]any, exclude ...string) map[string]any {
	params := make(map[string]any, len(spec))
	for k, v := range spec {
		params[k] = v
	}
	for _, k := range exclude {
		delete(params, k)
	}
	return track.CloneMap(params)
}
