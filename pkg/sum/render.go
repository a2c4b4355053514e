package sum

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
)

// IsNil reports whether i is nil, including typed nil pointers and other
// nilable kinds hiding behind an interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Render produces a human-readable rendering of a container payload for
// extractor panic messages. Errors render via Error, Stringers via String,
// everything else as JSON.
func Render(v any) string {
	switch p := v.(type) {
	case error:
		return p.Error()
	case fmt.Stringer:
		return p.String()
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
