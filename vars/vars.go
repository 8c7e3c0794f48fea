package vars

import "strings"

func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}

// Blank reports whether any of the strings is empty after trimming spaces.
func Blank(strs ...string) bool {
	for _, str := range strs {
		if strings.TrimSpace(str) == "" {
			return true
		}
	}
	return false
}
