package generate

import (
	"testing"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/stretchr/testify/require"
)

func TestResolveField(t *testing.T) {
	app := &knack.Application{
		Objects: []knack.Object{
			{
				Key: "object_1",
				Fields: []knack.Field{
					{Key: "field_1", Type: knack.FieldShortText},
					{Key: "field_2", Type: knack.FieldConnection,
						Relationship: &knack.Relationship{Object: "object_2"}},
					{Key: "field_5", Type: knack.FieldConnection,
						Relationship: &knack.Relationship{Object: "object_missing"}},
				},
			},
			{
				Key: "object_2",
				Fields: []knack.Field{
					{Key: "field_3", Type: knack.FieldEmail},
					{Key: "field_4", Type: knack.FieldConnection,
						Relationship: &knack.Relationship{Object: "object_3"}},
				},
			},
			{
				Key: "object_3",
				Fields: []knack.Field{
					{Key: "field_6", Type: knack.FieldNumber},
				},
			},
		},
	}
	source := app.ObjectByKey("object_1")

	t.Run("own field", func(t *testing.T) {
		f := resolveField("field_1", source, app)
		require.NotNil(t, f)
		require.Equal(t, "field_1", f.Key)
	})

	t.Run("one hop through connection", func(t *testing.T) {
		f := resolveField("field_3", source, app)
		require.NotNil(t, f)
		require.Equal(t, "field_3", f.Key)
	})

	t.Run("two hops are not followed", func(t *testing.T) {
		require.Nil(t, resolveField("field_6", source, app))
	})

	t.Run("unresolved connection target skipped", func(t *testing.T) {
		require.Nil(t, resolveField("field_99", source, app))
	})

	t.Run("nil source", func(t *testing.T) {
		require.Nil(t, resolveField("field_1", nil, app))
	})
}
