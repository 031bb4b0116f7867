package generate

import (
	"encoding/json"
	"sort"

	"github.com/openfield/knackspec/internal/knack"
)

// keywordSearchField is the pseudo-field Knack injects into search
// views for full-text keyword input. It has no backing object field.
const keywordSearchField = "keyword_search"

// viewFieldKeys returns the set of field keys a view actually
// surfaces, sorted for determinism. Dispatch is by view type; each
// type buries its field references in a different nested layout.
// Unknown view types surface no fields, which later excludes the view
// from schema generation.
func viewFieldKeys(v *knack.View) []string {
	set := map[string]struct{}{}

	switch v.Type {
	case "table":
		collectColumnFields(v.Columns, set)

	case "form":
		for _, g := range v.Groups {
			for _, c := range g.Columns {
				for _, in := range c.Inputs {
					if in.Key != "" {
						set[in.Key] = struct{}{}
					} else if in.Field != nil && in.Field.Key != "" {
						set[in.Field.Key] = struct{}{}
					}
				}
			}
		}

	case "details":
		// Layout (a): groups of columns, each listing fields.
		for _, g := range v.Groups {
			for _, c := range g.Columns {
				for _, f := range c.Fields {
					if f.Key != "" {
						set[f.Key] = struct{}{}
					}
				}
			}
		}
		// Layout (b): outer columns holding groups, inner column data
		// is one field ref or an array of them.
		for _, col := range v.Columns {
			for _, g := range col.Groups {
				for _, raw := range g.Columns {
					collectRawFields(raw, set)
				}
			}
		}

	case "search":
		if v.Results != nil {
			collectColumnFields(v.Results.Columns, set)
		}
		for _, g := range v.Groups {
			for _, c := range g.Columns {
				for _, f := range c.Fields {
					if f.Key != "" && f.Key != keywordSearchField {
						set[f.Key] = struct{}{}
					}
				}
			}
		}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func collectColumnFields(cols []knack.ViewColumn, set map[string]struct{}) {
	for _, c := range cols {
		if c.Type != "field" {
			continue
		}
		if c.Field != nil && c.Field.Key != "" {
			set[c.Field.Key] = struct{}{}
		}
	}
}

// collectRawFields decodes an inner details column, which is either a
// single field ref or an array of them. Fragments that decode as
// neither are skipped.
func collectRawFields(raw json.RawMessage, set map[string]struct{}) {
	var one knack.FieldRef
	if err := json.Unmarshal(raw, &one); err == nil && one.Key != "" {
		set[one.Key] = struct{}{}
		return
	}

	var many []knack.FieldRef
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, f := range many {
			if f.Key != "" {
				set[f.Key] = struct{}{}
			}
		}
	}
}
