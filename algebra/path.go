package algebra

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ─────────────────────────────────────────────────────────────────────────────
// Key and dot-path lookup
//
// Lists and Text are indexed by position, Dicts by key and Identity values
// holding a struct by exported field name. Integer and string keys are
// interchangeable where the container needs the other form:
//
//	w := Resolve(map[string]any{
//	    "user": map[string]any{
//	        "tags": []any{"admin", "ops"},
//	    },
//	})
//
//	Path(w, "user.tags.1") → "ops", true
//	Path(w, "user.name")   → nil, false
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value of w at key.
func Get(w Wrapper, key any) (any, bool) {
	switch v := w.(type) {
	case Dict:
		if x, ok := v.Get(key); ok {
			return x, true
		}
		switch k := key.(type) {
		case string:
			if i, err := strconv.Atoi(k); err == nil {
				return v.Get(i)
			}
		case int:
			return v.Get(strconv.Itoa(k))
		}
		return nil, false
	case Identity:
		if inner := Resolve(v.value); inner.Variant() != VariantIdentity {
			return Get(inner, key)
		}
		name, ok := key.(string)
		if !ok {
			return nil, false
		}
		return field(v.value, name)
	case Empty:
		return nil, false
	}
	i, err := cast.ToIntE(key)
	if err != nil || i < 0 || i >= w.Len() {
		return nil, false
	}
	return w.Values()[i], true
}

// Path follows a dot-separated key path through nested values.
func Path(w Wrapper, path string) (any, bool) {
	var cur any = w
	for _, seg := range strings.Split(path, ".") {
		next, ok := Get(Resolve(cur), seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func field(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}
	return fv.Interface(), true
}
