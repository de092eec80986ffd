package jsonfmt

// Reformat parses text as JSON/JSONC and re-emits it through the layout
// pipeline, producing a human-oriented rendering rather than a canonical
// minified one. startingDepth shifts every line's indentation, for
// embedding the result inside an already-indented document (spec §6).
func Reformat(text string, startingDepth int, opts Options) (string, error) {
	out, _, err := FormatWithStats(text, startingDepth, opts)
	return out, err
}

// FormatWithStats is Reformat plus a report of which layouts the emitter
// chose, for callers instrumenting the formatter (spec §3.5).
func FormatWithStats(text string, startingDepth int, opts Options) (string, Stats, error) {
	doc, err := Parse(text, opts)
	if err != nil {
		return "", Stats{}, err
	}

	pad := newPaddingTokens(opts)
	for _, it := range doc.Items {
		measure(it, pad)
	}

	buf := newLineBuffer(pad.length)
	buf.add(opts.PrefixString, pad.indent(startingDepth))
	var stats Stats

	lastIdx := len(doc.Items) - 1
	for i, it := range doc.Items {
		if it.Kind.IsStandalone() {
			emitStandaloneContent(it, buf, &stats)
		} else {
			if err := chooseAndEmitLayout(it, startingDepth, pad, opts, buf, &stats); err != nil {
				return "", stats, err
			}
		}
		buf.endLine(pad.eol)
		if i != lastIdx {
			buf.add(opts.PrefixString, pad.indent(startingDepth))
		}
	}

	return buf.String(), stats, nil
}
