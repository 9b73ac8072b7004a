package hazel

import "testing"

type stubFormatter struct {
	calls    int
	normal   string
	emphasis string
}

func (f *stubFormatter) FormattedLabel(dataIndex int, state string, dimIndex int) string {
	f.calls++
	if state == StateEmphasis {
		return f.emphasis
	}
	return f.normal
}

func TestLabelShortCircuitWhenBothHidden(t *testing.T) {
	f := &stubFormatter{normal: "42"}
	normal := model(map[string]any{"show": false, "rich": map[string]any{"a": map[string]any{}}}, nil)
	emphasis := model(map[string]any{"show": false}, nil)

	ns, es := ResolveLabel(normal, emphasis, DefaultTheme, LabelOptions{Formatter: f})
	if f.calls != 0 {
		t.Errorf("formatter called %d times, want 0", f.calls)
	}
	if ns.Text != "" || es.Text != "" {
		t.Error("hidden states must yield no text")
	}
	if ns.Fill != "" || ns.FontSize != nil || ns.Rich != nil {
		t.Error("short-circuit must skip style resolution entirely")
	}
}

func TestLabelShowGating(t *testing.T) {
	f := &stubFormatter{normal: "n", emphasis: "e"}
	normal := model(map[string]any{"show": true}, nil)
	emphasis := model(map[string]any{"show": false}, nil)

	ns, es := ResolveLabel(normal, emphasis, nil, LabelOptions{Formatter: f})
	if ns.Text != "n" {
		t.Errorf("normal text = %q, want n", ns.Text)
	}
	if es.Text != "" {
		t.Errorf("emphasis text = %q, want none for hidden state", es.Text)
	}
	if f.calls != 1 {
		t.Errorf("formatter called %d times, want 1 (hidden state skipped)", f.calls)
	}
}

func TestEmphasisTextInheritsNormal(t *testing.T) {
	f := &stubFormatter{normal: "n"}
	normal := model(map[string]any{"show": true}, nil)
	emphasis := model(map[string]any{"show": true}, nil)

	_, es := ResolveLabel(normal, emphasis, nil, LabelOptions{Formatter: f})
	if es.Text != "n" {
		t.Errorf("emphasis text = %q, want inherited n", es.Text)
	}
}

func TestEmphasisTextOwnFormatterWins(t *testing.T) {
	f := &stubFormatter{normal: "n", emphasis: "e"}
	normal := model(map[string]any{"show": true}, nil)
	emphasis := model(map[string]any{"show": true}, nil)

	_, es := ResolveLabel(normal, emphasis, nil, LabelOptions{Formatter: f})
	if es.Text != "e" {
		t.Errorf("emphasis text = %q, want e", es.Text)
	}
}

func TestEmphasisResolvesOverridesOnly(t *testing.T) {
	theme := &Theme{TextStyle: map[string]any{"color": "#999"}}
	f := &stubFormatter{normal: "n"}
	normal := model(map[string]any{"show": true}, nil)
	emphasis := model(map[string]any{"show": true}, nil)

	ns, es := ResolveLabel(normal, emphasis, theme, LabelOptions{Formatter: f})
	if ns.Fill != "#999" {
		t.Errorf("normal fill = %q, want theme default", ns.Fill)
	}
	if es.Fill != "" {
		t.Errorf("emphasis fill = %q, want unset (no injected defaults)", es.Fill)
	}
}

func TestLabelDefaultText(t *testing.T) {
	normal := model(map[string]any{"show": true}, nil)
	ns, _ := ResolveLabel(normal, nil, nil, LabelOptions{DefaultText: "fallback"})
	if ns.Text != "fallback" {
		t.Errorf("text = %q, want fallback", ns.Text)
	}
}

func TestLabelNilEmphasisModel(t *testing.T) {
	f := &stubFormatter{normal: "n"}
	normal := model(map[string]any{"show": true}, nil)
	ns, es := ResolveLabel(normal, nil, nil, LabelOptions{Formatter: f})
	if ns.Text != "n" {
		t.Errorf("normal text = %q, want n", ns.Text)
	}
	if es == nil || es.Text != "" {
		t.Error("nil emphasis model yields an empty emphasis record")
	}
}

func TestLabelRichTokensResolved(t *testing.T) {
	f := &stubFormatter{normal: "{a|hi}"}
	normal := model(map[string]any{
		"show": true,
		"rich": map[string]any{"a": map[string]any{"color": "#111"}},
	}, nil)

	ns, _ := ResolveLabel(normal, nil, nil, LabelOptions{Formatter: f})
	if ns.Rich == nil || ns.Rich["a"] == nil || ns.Rich["a"].Fill != "#111" {
		t.Errorf("rich tokens not resolved: %v", ns.Rich)
	}
}

func TestLabelCallerOverlaysWin(t *testing.T) {
	theme := &Theme{TextStyle: map[string]any{"color": "#999"}}
	f := &stubFormatter{normal: "n"}
	normal := model(map[string]any{"show": true}, nil)

	ns, _ := ResolveLabel(normal, nil, theme, LabelOptions{
		Formatter:     f,
		NormalOverlay: &TextStyle{Fill: "#abc"},
	})
	if ns.Fill != "#abc" {
		t.Errorf("fill = %q, want caller overlay #abc", ns.Fill)
	}
	if ns.Text != "n" {
		t.Error("text stamping happens after the overlay")
	}
}

func TestLabelNilNormalModelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil normal model")
		}
	}()
	ResolveLabel(nil, nil, nil, LabelOptions{})
}
