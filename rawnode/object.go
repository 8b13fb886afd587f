package rawnode

// Object is an order-preserving string-keyed map. encoding/json's
// map[string]any loses the declared key order, but §4.E (the
// command/endpoint/action parser) and §4.D ("take the first key") both
// depend on it, so every wrapper decoded by Decode is an *Object rather
// than a bare map.
type Object struct {
	keys []string
	vals map[string]Raw
}

// NewObject returns an empty, order-preserving object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Raw)}
}

// Set appends key to the declared order the first time it is seen and
// stores val. A repeated key keeps its original position but the latest
// value, matching how encoding/json treats duplicate JSON object keys.
func (o *Object) Set(key string, val Raw) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

// Keys returns the keys in declared (insertion) order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Raw, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// First returns the first key/value pair in declared order.
func (o *Object) First() (string, Raw, bool) {
	if o == nil || len(o.keys) == 0 {
		return "", nil, false
	}
	k := o.keys[0]
	return k, o.vals[k], true
}

// ToMap converts to a plain map[string]any, for handing off to
// mapstructure-based projection where order no longer matters.
func (o *Object) ToMap() map[string]any {
	if o == nil {
		return nil
	}
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		m[k] = deflate(o.vals[k])
	}
	return m
}

// deflate recursively converts nested *Object/[]Raw into plain
// map[string]any/[]any so mapstructure (which does not know about *Object)
// can decode them.
func deflate(v Raw) any {
	switch t := v.(type) {
	case *Object:
		return t.ToMap()
	case []Raw:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deflate(e)
		}
		return out
	default:
		return v
	}
}

// AsObject returns v as *Object if it is one.
func AsObject(v Raw) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok
}
