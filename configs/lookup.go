package configs

import (
	"errors"
	"iter"
)

// First returns the first defined value at path, or the zero value. Malformed files panic, as they do at startup.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// Bool resolves a boolean setting whose false value must be able to override a true default.
func Bool(loader Loader, path string, def bool) bool {
	if v := First[*bool](loader, path); v != nil {
		return *v
	}
	return def
}

func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
