package hazel

// Label states passed to the formatter.
const (
	StateNormal   = "normal"
	StateEmphasis = "emphasis"
)

// LabelFormatter computes the display text of a label for one data point.
// An empty return means the formatter yields nothing for that state.
type LabelFormatter interface {
	FormattedLabel(dataIndex int, state string, dimIndex int) string
}

// LabelOptions carries the context for a full label resolution.
type LabelOptions struct {
	// Formatter computes label text. Nil means no formatter: shown states
	// fall back to DefaultText.
	Formatter LabelFormatter
	DataIndex int
	DimIndex  int

	// DefaultText is used when a shown state's formatter yields nothing.
	DefaultText string

	// Resolution context, forwarded to ResolveTextStyle.
	AutoColor  string
	IsRectText bool
	DisableBox bool
	Inside     func(position string) bool

	// Caller-supplied explicit styles, overlaid onto the resolved records
	// last — they win over everything the cascade computed.
	NormalOverlay   *TextStyle
	EmphasisOverlay *TextStyle
}

// ResolveLabel computes the normal and emphasis text styles for one labeled
// item.
//
// Text content is gated per state on the model's "show" flag; a hidden state
// gets no text and its formatter is never invoked. Emphasis text inherits
// the normal text when its own formatter yields nothing. If neither state
// ends up with text, no style resolution happens at all and two records
// empty of text-specific fields are returned.
//
// Otherwise the normal record resolves with defaults and the emphasis record
// resolves in OverridesOnly mode, so emphasis never introduces values absent
// from its own model chain. The emphasis model need not be related to the
// normal one and may be nil.
func ResolveLabel(normalModel, emphasisModel StyleModel, theme *Theme, opts LabelOptions) (normal, emphasis *TextStyle) {
	if normalModel == nil {
		panic("hazel: cannot resolve label without a normal model")
	}

	showNormal := asBool(chainValue(normalModel, "show"))
	showEmphasis := emphasisModel != nil && asBool(chainValue(emphasisModel, "show"))

	var normalText, emphasisText string
	if showNormal {
		normalText = formatLabel(opts, StateNormal)
		if normalText == "" {
			normalText = opts.DefaultText
		}
	}
	if showEmphasis {
		emphasisText = formatLabel(opts, StateEmphasis)
		if emphasisText == "" {
			emphasisText = normalText
		}
	}

	if normalText == "" && emphasisText == "" {
		return &TextStyle{}, &TextStyle{}
	}

	ropts := TextResolveOptions{
		Mode:       WithDefaults,
		AutoColor:  opts.AutoColor,
		IsRectText: opts.IsRectText,
		DisableBox: opts.DisableBox,
		Inside:     opts.Inside,
	}
	normal = ResolveTextStyle(normalModel, theme, ropts)
	normal.Rich = ResolveRichTokens(normalModel, theme, ropts)

	eopts := ropts
	eopts.Mode = OverridesOnly
	if emphasisModel != nil {
		emphasis = ResolveTextStyle(emphasisModel, theme, eopts)
		emphasis.Rich = ResolveRichTokens(emphasisModel, theme, eopts)
	} else {
		emphasis = &TextStyle{}
	}

	normal.Overlay(opts.NormalOverlay)
	emphasis.Overlay(opts.EmphasisOverlay)

	normal.Text = normalText
	emphasis.Text = emphasisText
	return normal, emphasis
}

func formatLabel(opts LabelOptions, state string) string {
	if opts.Formatter == nil {
		return ""
	}
	return opts.Formatter.FormattedLabel(opts.DataIndex, state, opts.DimIndex)
}
