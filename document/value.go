package document

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindInvalid is the zero Kind and marks an absent value, such as the
	// result of looking up a missing key.
	KindInvalid Kind = iota
	// KindNull is an explicit JSON/YAML null.
	KindNull
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is a numeric scalar, stored as float64.
	KindNumber
	// KindString is a string scalar.
	KindString
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObject is an ordered mapping of string keys to values.
	KindObject
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a semi-structured document tree. The zero Value is
// invalid and represents absence.
//
// Arrays and objects are held by reference: copying a Value is cheap, and
// mutations through any copy are visible through all copies. Use Clone for
// an independent deep copy.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  *arrayValue
	obj  *objectValue
}

type arrayValue struct {
	elems []Value
}

// objectValue keeps both a key slice for ordering and a map for lookups.
type objectValue struct {
	keys []string
	vals map[string]Value
}

// Null returns an explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// NewArray returns an array value holding the given elements.
func NewArray(elems ...Value) Value {
	return Value{kind: KindArray, arr: &arrayValue{elems: elems}}
}

// NewObject returns an empty object value.
func NewObject() Value {
	return Value{kind: KindObject, obj: &objectValue{vals: make(map[string]Value)}}
}

// Kind returns the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is invalid (absent).
func (v Value) IsZero() bool { return v.kind == KindInvalid }

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload, reporting whether the value is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload, reporting whether the value is a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the string payload, reporting whether the value is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Len returns the number of object fields or array elements, and 0 for any
// other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj.keys)
	case KindArray:
		return len(v.arr.elems)
	default:
		return 0
	}
}

// Get returns the field named key. If the value is not an object, or the key
// is absent, the result is the invalid Value, so lookups chain safely:
// doc.Get("info").Get("title").
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Value{}
	}
	return v.obj.vals[key]
}

// Has reports whether the value is an object containing key. Unlike Get it
// distinguishes an explicit null field from an absent one.
func (v Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.obj.vals[key]
	return ok
}

// Keys returns the object's keys in insertion order, or nil for non-objects.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj.keys))
	copy(keys, v.obj.keys)
	return keys
}

// Set stores a field on an object, appending the key to the order on first
// insert. It reports whether the value was an object.
func (v Value) Set(key string, val Value) bool {
	if v.kind != KindObject {
		return false
	}
	if _, ok := v.obj.vals[key]; !ok {
		v.obj.keys = append(v.obj.keys, key)
	}
	v.obj.vals[key] = val
	return true
}

// Delete removes a field from an object. It reports whether the key existed.
func (v Value) Delete(key string) bool {
	if v.kind != KindObject {
		return false
	}
	if _, ok := v.obj.vals[key]; !ok {
		return false
	}
	delete(v.obj.vals, key)
	for i, k := range v.obj.keys {
		if k == key {
			v.obj.keys = append(v.obj.keys[:i], v.obj.keys[i+1:]...)
			break
		}
	}
	return true
}

// At returns the array element at index i, or the invalid Value when the
// value is not an array or i is out of range.
func (v Value) At(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr.elems) {
		return Value{}
	}
	return v.arr.elems[i]
}

// SetAt replaces the array element at index i. It reports whether the
// element existed.
func (v Value) SetAt(i int, val Value) bool {
	if v.kind != KindArray || i < 0 || i >= len(v.arr.elems) {
		return false
	}
	v.arr.elems[i] = val
	return true
}

// Append adds an element to an array. It reports whether the value was an
// array.
func (v Value) Append(val Value) bool {
	if v.kind != KindArray {
		return false
	}
	v.arr.elems = append(v.arr.elems, val)
	return true
}

// Clone returns an independent deep copy of the value. Scalars are copied
// directly; arrays and objects are rebuilt recursively.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr.elems))
		for i, e := range v.arr.elems {
			elems[i] = e.Clone()
		}
		return Value{kind: KindArray, arr: &arrayValue{elems: elems}}
	case KindObject:
		out := NewObject()
		for _, k := range v.obj.keys {
			out.Set(k, v.obj.vals[k].Clone())
		}
		return out
	default:
		return v
	}
}
