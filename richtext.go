package hazel

// ResolveRichTokens resolves the named rich-text token styles visible at a
// model node. The visible set is the union of token names declared by the
// node or any ancestor — a token a child references without redeclaring
// still inherits the ancestor's definition. Each name is then resolved as
// the sub-model path "rich.<name>" against the starting node, letting the
// ordinary per-property cascade re-resolve its values along the chain.
//
// Token styles never carry box properties. The result is nil when no layer
// declares a rich map at all; an empty-but-present rich declaration yields a
// non-nil empty map, which downstream markup rendering treats differently
// from absence.
func ResolveRichTokens(model StyleModel, theme *Theme, opts TextResolveOptions) map[string]*TextStyle {
	if model == nil {
		panic("hazel: cannot resolve rich tokens without a model")
	}

	var names map[string]struct{}
	for _, layer := range resolutionLayers(model) {
		rich, ok := layer.RawOption()["rich"].(map[string]any)
		if !ok {
			continue
		}
		if names == nil {
			names = make(map[string]struct{}, len(rich))
		}
		for name := range rich {
			names[name] = struct{}{}
		}
	}
	if names == nil {
		return nil
	}

	tokenOpts := opts
	tokenOpts.DisableBox = true
	tokenOpts.IsRectText = false // placement belongs to the enclosing block

	out := make(map[string]*TextStyle, len(names))
	for name := range names {
		sub := model.GetSubModel("rich." + name)
		if sub == nil {
			// Declared name with a non-map value; nothing to resolve.
			continue
		}
		out[name] = ResolveTextStyle(sub, theme, tokenOpts)
	}
	return out
}
