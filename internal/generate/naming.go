package generate

import (
	"fmt"
	"unicode"
)

// sanitizeName strips a human-readable name down to alphanumerics so
// it can be embedded in an operationId. Two entities whose names
// collapse to the same string will collide; Knack keys keep the ids
// unique in practice and collisions are not detected.
func sanitizeName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// operationID builds "key_verb_Name" style identifiers shared by the
// object and view generators.
func operationID(key, verb, name string) string {
	clean := sanitizeName(name)
	if clean == "" {
		return fmt.Sprintf("%s_%s", key, verb)
	}
	return fmt.Sprintf("%s_%s_%s", key, verb, clean)
}
