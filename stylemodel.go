package hazel

import "strings"

// StyleModel is one node in a hierarchical style configuration tree. Lookups
// are shallow by design; the cascade over the ancestor chain is performed
// explicitly by the resolvers (see chainValue), never by the model itself.
type StyleModel interface {
	// GetLocal returns the value declared directly on this node for key, or
	// nil when the node does not declare it. No parent walk.
	GetLocal(key string) any

	// GetSubModel returns the model node at a dot-separated path below this
	// node, chained so that the sub-model's parent is the same path resolved
	// against this node's parent. Returns nil when neither this node nor any
	// ancestor declares the path.
	GetSubModel(path string) StyleModel

	// Parent returns the enclosing model node, or nil at the root.
	Parent() StyleModel

	// RawOption exposes the node's raw declaration map, sufficient to
	// enumerate declared rich token names. Callers must not mutate it.
	RawOption() map[string]any
}

// resolutionLayers returns the ordered lookup chain for m: the node itself,
// then its ancestors up to the root. Resolvers fold over this list (then the
// theme, then computed defaults) instead of relying on implicit lookup.
func resolutionLayers(m StyleModel) []StyleModel {
	var layers []StyleModel
	for ; m != nil; m = m.Parent() {
		layers = append(layers, m)
	}
	return layers
}

// chainValue returns the first value declared for key along m's chain, or
// nil when no layer declares it.
func chainValue(m StyleModel, key string) any {
	for _, layer := range resolutionLayers(m) {
		if v := layer.GetLocal(key); v != nil {
			return v
		}
	}
	return nil
}

// --- OptionModel ---

// OptionModel is the map-backed StyleModel implementation. Option maps are
// plain nested map[string]any values, typically decoded from JSON or built
// in code.
type OptionModel struct {
	option map[string]any
	parent StyleModel
}

// NewOptionModel creates a model node over option with the given parent.
// Both may be nil.
func NewOptionModel(option map[string]any, parent StyleModel) *OptionModel {
	return &OptionModel{option: option, parent: parent}
}

// GetLocal returns the value declared directly on this node, or nil.
func (m *OptionModel) GetLocal(key string) any {
	if m.option == nil {
		return nil
	}
	return m.option[key]
}

// GetSubModel returns the chained sub-model at path (see StyleModel).
func (m *OptionModel) GetSubModel(path string) StyleModel {
	sub := lookupPath(m.option, path)
	var psub StyleModel
	if m.parent != nil {
		psub = m.parent.GetSubModel(path)
	}
	if sub == nil && psub == nil {
		return nil
	}
	return &OptionModel{option: sub, parent: psub}
}

// Parent returns the enclosing model node, or nil at the root.
func (m *OptionModel) Parent() StyleModel {
	return m.parent
}

// RawOption returns the node's raw declaration map. Callers must not mutate it.
func (m *OptionModel) RawOption() map[string]any {
	return m.option
}

// lookupPath descends a dot-separated path of nested maps.
// Returns nil when any segment is missing or not a map.
func lookupPath(option map[string]any, path string) map[string]any {
	cur := option
	for _, seg := range strings.Split(path, ".") {
		if cur == nil {
			return nil
		}
		next, ok := cur[seg].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// --- Value coercion ---

// Option maps decoded from JSON carry float64 for every number, but maps
// built in code often hold int literals. The coercers accept both.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// asFloats coerces a numeric slice value ([]float64, []any of numbers, or a
// single number broadcast to length n when n > 0).
func asFloats(v any, n int) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case []any:
		out := make([]float64, 0, len(s))
		for _, e := range s {
			f, ok := asFloat(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	default:
		if f, ok := asFloat(v); ok && n > 0 {
			out := make([]float64, n)
			for i := range out {
				out[i] = f
			}
			return out, true
		}
	}
	return nil, false
}
