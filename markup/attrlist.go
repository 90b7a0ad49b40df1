package markup

// AttrList is an insertion-ordered string-to-string map. Attribute
// order is part of this parser's observable output (a writer must be
// able to reproduce attributes in the order they were declared), so a
// plain map is not enough; grounded on the same ordering guarantee the
// attribute grammar (C7) requires of `read_attributes`.
type AttrList struct {
	keys []string
	vals map[string]string
}

// NewAttrList returns an empty, ready-to-use attribute list.
func NewAttrList() *AttrList {
	return &AttrList{vals: map[string]string{}}
}

// Set assigns key=val, appending key to the declaration order the
// first time it is seen. Reports whether key already existed.
func (a *AttrList) Set(key, val string) bool {
	_, existed := a.vals[key]
	if !existed {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = val
	return existed
}

// Get returns the value for key and whether it was present.
func (a *AttrList) Get(key string) (string, bool) {
	v, ok := a.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (a *AttrList) Has(key string) bool {
	_, ok := a.vals[key]
	return ok
}

// AppendValue joins an additional token onto an existing value with
// sep, or sets it outright if key is new. Used for the `class`-style
// shorthand where repeated shortcuts accumulate rather than overwrite.
func (a *AttrList) AppendValue(key, sep, val string) {
	if cur, ok := a.vals[key]; ok && cur != "" {
		a.Set(key, cur+sep+val)
		return
	}
	a.Set(key, val)
}

// Keys returns attribute names in declaration order. The caller owns
// the returned slice.
func (a *AttrList) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of attributes.
func (a *AttrList) Len() int { return len(a.keys) }

// Delete removes key, if present, including from the ordering.
func (a *AttrList) Delete(key string) {
	if _, ok := a.vals[key]; !ok {
		return
	}
	delete(a.vals, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}
