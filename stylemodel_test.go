package hazel

import "testing"

func TestChainValuePrefersLocal(t *testing.T) {
	root := NewOptionModel(map[string]any{"color": "#111", "fontSize": 10.0}, nil)
	child := NewOptionModel(map[string]any{"color": "#222"}, root)

	if got := chainValue(child, "color"); got != "#222" {
		t.Errorf("color = %v, want local #222", got)
	}
	if got := chainValue(child, "fontSize"); got != 10.0 {
		t.Errorf("fontSize = %v, want inherited 10", got)
	}
	if got := chainValue(child, "missing"); got != nil {
		t.Errorf("missing key = %v, want nil", got)
	}
}

func TestGetLocalIsShallow(t *testing.T) {
	root := NewOptionModel(map[string]any{"color": "#111"}, nil)
	child := NewOptionModel(nil, root)
	if child.GetLocal("color") != nil {
		t.Error("GetLocal must not walk the parent chain")
	}
}

func TestGetSubModelChainsThroughParents(t *testing.T) {
	root := NewOptionModel(map[string]any{
		"rich": map[string]any{
			"a": map[string]any{"color": "#111", "fontSize": 14.0},
		},
	}, nil)
	child := NewOptionModel(map[string]any{
		"rich": map[string]any{
			"a": map[string]any{"color": "#222"},
		},
	}, root)

	sub := child.GetSubModel("rich.a")
	if sub == nil {
		t.Fatal("sub-model should exist")
	}
	if got := chainValue(sub, "color"); got != "#222" {
		t.Errorf("color = %v, want child override #222", got)
	}
	if got := chainValue(sub, "fontSize"); got != 14.0 {
		t.Errorf("fontSize = %v, want ancestor 14", got)
	}
}

func TestGetSubModelDeclaredOnlyOnAncestor(t *testing.T) {
	root := NewOptionModel(map[string]any{
		"rich": map[string]any{"a": map[string]any{"color": "#111"}},
	}, nil)
	child := NewOptionModel(map[string]any{}, root)

	sub := child.GetSubModel("rich.a")
	if sub == nil {
		t.Fatal("sub-model declared on an ancestor should still resolve")
	}
	if got := chainValue(sub, "color"); got != "#111" {
		t.Errorf("color = %v, want #111", got)
	}
}

func TestGetSubModelMissingEverywhere(t *testing.T) {
	m := NewOptionModel(map[string]any{}, nil)
	if sub := m.GetSubModel("rich.nope"); sub != nil {
		t.Errorf("sub-model = %v, want nil", sub)
	}
}

// --- Coercion ---

func TestAsFloatAcceptsIntAndFloat(t *testing.T) {
	cases := []struct {
		v    any
		want float64
		ok   bool
	}{
		{5, 5, true},
		{int64(7), 7, true},
		{float32(1.5), 1.5, true},
		{2.5, 2.5, true},
		{"5", 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := asFloat(c.v)
		if got != c.want || ok != c.ok {
			t.Errorf("asFloat(%v) = (%v, %v), want (%v, %v)", c.v, got, ok, c.want, c.ok)
		}
	}
}

func TestAsFloats(t *testing.T) {
	if got, ok := asFloats([]any{1, 2.0}, 2); !ok || len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("asFloats mixed slice = %v, %v", got, ok)
	}
	if got, ok := asFloats(4, 4); !ok || len(got) != 4 || got[3] != 4 {
		t.Errorf("asFloats broadcast = %v, %v", got, ok)
	}
	if _, ok := asFloats([]any{"x"}, 2); ok {
		t.Error("non-numeric slice must not coerce")
	}
}
