package analyze

import (
	"errors"
	"fmt"
	pathpkg "path"
	"strings"
)

// ErrUnknownAnalyzerID is returned when registry lookup fails.
var ErrUnknownAnalyzerID = errors.New("unknown analyzer id")

// ErrDuplicateAnalyzerID is returned when registry receives duplicate IDs.
var ErrDuplicateAnalyzerID = errors.New("duplicate analyzer id")

// ErrInvalidAnalyzerGlob is returned when a glob pattern is malformed.
var ErrInvalidAnalyzerGlob = errors.New("invalid analyzer glob")

// Descriptor contains stable analyzer metadata.
type Descriptor struct {
	ID          string
	Description string
}

// Registry stores analyzer metadata with deterministic ordering.
type Registry struct {
	ordered []Descriptor
	index   map[string]Descriptor
}

// NewRegistry creates a registry from analyzers, preserving their order.
func NewRegistry(analyzers []Analyzer) (*Registry, error) {
	r := &Registry{
		ordered: make([]Descriptor, 0, len(analyzers)),
		index:   make(map[string]Descriptor, len(analyzers)),
	}

	for _, analyzer := range analyzers {
		id := analyzer.Name()
		if _, taken := r.index[id]; taken {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAnalyzerID, id)
		}

		descriptor := Descriptor{ID: id, Description: analyzer.Description()}
		r.index[id] = descriptor
		r.ordered = append(r.ordered, descriptor)
	}

	return r, nil
}

// All returns all descriptors in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)

	return out
}

// Descriptor returns analyzer metadata for the given ID.
func (r *Registry) Descriptor(id string) (Descriptor, bool) {
	descriptor, ok := r.index[id]

	return descriptor, ok
}

// SelectedIDs expands the selection patterns to analyzer IDs. Patterns may
// be exact IDs or path globs ("s*" selects students and subjects). An empty
// selection means every registered analyzer, in registration order.
// Duplicates collapse to the first occurrence.
func (r *Registry) SelectedIDs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return r.allIDs(), nil
	}

	var selected []string

	seen := make(map[string]struct{}, len(r.ordered))

	for _, raw := range patterns {
		ids, err := r.resolvePattern(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}

		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}

			seen[id] = struct{}{}
			selected = append(selected, id)
		}
	}

	return selected, nil
}

func (r *Registry) resolvePattern(pattern string) ([]string, error) {
	switch {
	case pattern == "*":
		return r.allIDs(), nil
	case !strings.ContainsAny(pattern, "*?["):
		if _, known := r.index[pattern]; known {
			return []string{pattern}, nil
		}

		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalyzerID, pattern)
	}

	var matched []string

	for _, descriptor := range r.ordered {
		ok, err := pathpkg.Match(pattern, descriptor.ID)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidAnalyzerGlob, pattern, err)
		}

		if ok {
			matched = append(matched, descriptor.ID)
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnalyzerID, pattern)
	}

	return matched, nil
}

func (r *Registry) allIDs() []string {
	ids := make([]string, len(r.ordered))
	for i, descriptor := range r.ordered {
		ids[i] = descriptor.ID
	}

	return ids
}
