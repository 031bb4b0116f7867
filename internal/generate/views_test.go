package generate

import (
	"encoding/json"
	"testing"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/stretchr/testify/require"
)

func fieldCol(key string) knack.ViewColumn {
	return knack.ViewColumn{Type: "field", Field: &knack.FieldRef{Key: key}}
}

func TestViewFieldKeysTable(t *testing.T) {
	v := &knack.View{
		Type: "table",
		Columns: []knack.ViewColumn{
			fieldCol("field_1"),
			{Type: "link"},
			fieldCol("field_2"),
			fieldCol("field_1"), // duplicate collapses
		},
	}

	require.Equal(t, []string{"field_1", "field_2"}, viewFieldKeys(v))
}

func TestViewFieldKeysForm(t *testing.T) {
	v := &knack.View{
		Type: "form",
		Groups: []knack.ViewGroup{
			{Columns: []knack.GroupColumn{
				{Inputs: []knack.ViewInput{
					{Key: "field_1"},
					{Field: &knack.FieldRef{Key: "field_2"}},
					{}, // no key either way
				}},
			}},
		},
	}

	require.Equal(t, []string{"field_1", "field_2"}, viewFieldKeys(v))
}

func TestViewFieldKeysDetailsShapesAgree(t *testing.T) {
	// Layout (a): groups of columns listing fields directly.
	groupShape := &knack.View{
		Type: "details",
		Groups: []knack.ViewGroup{
			{Columns: []knack.GroupColumn{
				{Fields: []knack.FieldRef{{Key: "field_1"}, {Key: "field_2"}}},
				{Fields: []knack.FieldRef{{Key: "field_3"}}},
			}},
		},
	}

	// Layout (b): outer columns with groups, inner column data mixing
	// single field objects and arrays.
	columnShape := &knack.View{
		Type: "details",
		Columns: []knack.ViewColumn{
			{Groups: []knack.DetailsGroup{
				{Columns: []json.RawMessage{
					json.RawMessage(`{"key":"field_1"}`),
					json.RawMessage(`[{"key":"field_2"},{"key":"field_3"}]`),
				}},
			}},
		},
	}

	require.Equal(t, viewFieldKeys(groupShape), viewFieldKeys(columnShape))
	require.Equal(t, []string{"field_1", "field_2", "field_3"}, viewFieldKeys(columnShape))
}

func TestViewFieldKeysDetailsBadFragment(t *testing.T) {
	v := &knack.View{
		Type: "details",
		Columns: []knack.ViewColumn{
			{Groups: []knack.DetailsGroup{
				{Columns: []json.RawMessage{
					json.RawMessage(`"not a field ref"`),
					json.RawMessage(`{"key":"field_1"}`),
				}},
			}},
		},
	}

	require.Equal(t, []string{"field_1"}, viewFieldKeys(v))
}

func TestViewFieldKeysSearch(t *testing.T) {
	v := &knack.View{
		Type: "search",
		Results: &knack.ViewResults{
			Columns: []knack.ViewColumn{fieldCol("field_1")},
		},
		Groups: []knack.ViewGroup{
			{Columns: []knack.GroupColumn{
				{Fields: []knack.FieldRef{
					{Key: "field_2"},
					{Key: "keyword_search"}, // reserved pseudo-field excluded
				}},
			}},
		},
	}

	require.Equal(t, []string{"field_1", "field_2"}, viewFieldKeys(v))
}

func TestViewFieldKeysUnknownType(t *testing.T) {
	v := &knack.View{
		Type:    "calendar",
		Columns: []knack.ViewColumn{fieldCol("field_1")},
	}

	require.Empty(t, viewFieldKeys(v))
}
