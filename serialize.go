package jsonfmt

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// JSONItemMarshaler is the escape hatch for a type that wants to control
// its own conversion in ValueToItem, the same role encoding/json.Marshaler
// plays for byte-level output: MarshalJSONItem returns a replacement value
// (any of the types valueToItem already understands, including another
// JSONItemMarshaler) to convert in its place.
type JSONItemMarshaler interface {
	MarshalJSONItem() (any, error)
}

// ValueToItem converts a native Go value into an *Item tree of the kind
// Parse would have produced, so Reformat's layout pipeline can run over
// data that was never JSON text to begin with (spec §6's serialize, §9's
// "dynamic typing" design note).
//
// Maps become Object items (keys sorted for determinism), slices and
// arrays become Array items, and the usual JSON scalar types map directly.
// A value implementing JSONItemMarshaler is converted via the value it
// returns instead. Recursion deeper than recursionLimit, a MarshalJSONItem
// error, or a value serialize has no mapping for, makes the *containing*
// call fail; at the root it makes ValueToItem return (nil, false).
func ValueToItem(value any, recursionLimit int) (*Item, bool) {
	return valueToItem(value, 0, recursionLimit)
}

func valueToItem(value any, depth int, limit int) (*Item, bool) {
	if depth > limit {
		return nil, false
	}

	if m, ok := value.(JSONItemMarshaler); ok {
		replacement, err := m.MarshalJSONItem()
		if err != nil {
			return nil, false
		}
		return valueToItem(replacement, depth, limit)
	}

	switch v := value.(type) {
	case nil:
		return &Item{Kind: KindNull, Value: "null"}, true
	case bool:
		if v {
			return &Item{Kind: KindTrue, Value: "true"}, true
		}
		return &Item{Kind: KindFalse, Value: "false"}, true
	case string:
		return &Item{Kind: KindString, Value: strconv.Quote(v)}, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Item{Kind: KindNumber, Value: strconv.FormatInt(rv.Int(), 10)}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Item{Kind: KindNumber, Value: strconv.FormatUint(rv.Uint(), 10)}, true
	case reflect.Float32, reflect.Float64:
		text, ok := formatFloat(rv.Float())
		if !ok {
			return nil, false
		}
		return &Item{Kind: KindNumber, Value: text}, true
	case reflect.Slice, reflect.Array:
		return sliceToItem(rv, depth, limit)
	case reflect.Map:
		return mapToItem(rv, depth, limit)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return &Item{Kind: KindNull, Value: "null"}, true
		}
		return valueToItem(rv.Elem().Interface(), depth, limit)
	default:
		return nil, false
	}
}

func formatFloat(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return strconv.FormatFloat(f, 'g', -1, 64), true
}

func sliceToItem(rv reflect.Value, depth int, limit int) (*Item, bool) {
	n := rv.Len()
	item := &Item{Kind: KindArray, Children: make([]*Item, 0, n)}
	for i := 0; i < n; i++ {
		child, ok := valueToItem(rv.Index(i).Interface(), depth+1, limit)
		if !ok {
			return nil, false
		}
		item.Children = append(item.Children, child)
	}
	computeComplexity(item)
	return item, true
}

func mapToItem(rv reflect.Value, depth int, limit int) (*Item, bool) {
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = fmt.Sprint(k.Interface())
	}
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return names[order[a]] < names[order[b]] })

	item := &Item{Kind: KindObject, Children: make([]*Item, 0, len(keys))}
	for _, i := range order {
		child, ok := valueToItem(rv.MapIndex(keys[i]).Interface(), depth+1, limit)
		if !ok {
			return nil, false
		}
		child.Name = strconv.Quote(names[i])
		item.Children = append(item.Children, child)
	}
	computeComplexity(item)
	return item, true
}

// Serialize renders a native Go value through the same layout pipeline as
// Reformat. It returns ("", false, nil) when value (or something it
// contains) has no JSON mapping — mirroring spec §6's "null result when
// root is non-serializable" without forcing an error on well-formed but
// partially-unsupported inputs.
func Serialize(value any, startingDepth int, opts Options) (string, bool, error) {
	limit := opts.recursionLimitOrDefault()
	item, ok := valueToItem(value, 0, limit)
	if !ok {
		return "", false, nil
	}

	pad := newPaddingTokens(opts)
	measure(item, pad)

	buf := newLineBuffer(pad.length)
	buf.add(opts.PrefixString, pad.indent(startingDepth))
	var stats Stats
	if err := chooseAndEmitLayout(item, startingDepth, pad, opts, buf, &stats); err != nil {
		return "", false, err
	}
	buf.endLine(pad.eol)
	return buf.String(), true, nil
}
