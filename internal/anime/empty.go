package anime

import (
	"encoding/json"
	"reflect"

	"github.com/varoOP/sankanime/internal/cache"
)

func isZero[T any](v T) bool {
	if raw, ok := any(v).(json.RawMessage); ok {
		return cache.IsEmptyJSON(raw)
	}
	rv := reflect.ValueOf(&v).Elem()
	return rv.IsZero()
}
