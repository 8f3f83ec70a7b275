package domain

import (
	"fmt"
	"reflect"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// Serialize converts a discovery tree into a JSON-safe document. Map keys of
// any type are coerced to strings, nested maps are converted recursively,
// callables are replaced by their reference rendering and every other value
// is kept as is.
func Serialize(tree any) (m.Document, error) {
	value, err := serializeValue(tree)
	if err != nil {
		return nil, err
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("snapshot root must be a mapping, got %T", tree)
	}

	return m.Document(doc), nil
}

func serializeValue(value any) (any, error) {
	if callable, ok := value.(m.Callable); ok {
		return callable.Reference().String(), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return value, nil
	}

	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key := fmt.Sprint(iter.Key().Interface())
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("duplicate key %q after string coercion", key)
		}

		converted, err := serializeValue(iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		out[key] = converted
	}

	return out, nil
}
