package document

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FromAny converts a decoded Go value (the shapes produced by encoding/json
// and yaml unmarshaling into any) to a Value. Map keys are sorted so the
// conversion is deterministic; use DecodeJSON or DecodeYAML when source key
// order must be preserved.
//
// Unrecognized types are converted to their string form.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case []any:
		arr := NewArray()
		for _, e := range t {
			arr.Append(FromAny(e))
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromAny(t[k]))
		}
		return obj
	default:
		return String(fmt.Sprint(t))
	}
}

// ToAny converts a Value back to plain Go types for boundary layers that
// expect map[string]any trees. Object field order is not representable and
// is lost. Invalid values convert to nil.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr.elems))
		for i, e := range v.arr.elems {
			out[i] = ToAny(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj.keys))
		for _, k := range v.obj.keys {
			out[k] = ToAny(v.obj.vals[k])
		}
		return out
	default:
		return nil
	}
}
