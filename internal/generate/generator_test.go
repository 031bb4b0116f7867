package generate

import (
	"testing"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/openfield/knackspec/internal/openapi"
	"github.com/stretchr/testify/require"
)

func sampleApplication() *knack.Application {
	return &knack.Application{
		Name: "Inventory",
		Objects: []knack.Object{
			{
				Key:         "object_1",
				Name:        "Items",
				Inflections: &knack.Inflections{Singular: "Item", Plural: "Items"},
				Fields: []knack.Field{
					{Key: "field_1", Name: "Title", Type: knack.FieldShortText, Required: true},
				},
			},
		},
		Scenes: []knack.Scene{
			{
				Key:  "scene_1",
				Name: "Items Page",
				Slug: "items",
				Views: []knack.View{
					{
						Key:    "view_1",
						Name:   "Items Table",
						Type:   "table",
						Source: &knack.ViewSource{Object: "object_1"},
						Columns: []knack.ViewColumn{
							{Type: "field", Field: &knack.FieldRef{Key: "field_1"}},
						},
					},
				},
			},
		},
	}
}

func TestGenerateObjectPaths(t *testing.T) {
	doc := Generate(sampleApplication(), Options{})

	records, ok := doc.Paths["/objects/object_1/records"]
	require.True(t, ok)
	require.NotNil(t, records.Get)
	require.NotNil(t, records.Post)

	record, ok := doc.Paths["/objects/object_1/records/{id}"]
	require.True(t, ok)
	require.NotNil(t, record.Get)
	require.NotNil(t, record.Put)
	require.NotNil(t, record.Delete)

	meta, ok := doc.Paths["/objects/object_1"]
	require.True(t, ok)
	require.NotNil(t, meta.Get)
}

func TestGenerateViewPath(t *testing.T) {
	doc := Generate(sampleApplication(), Options{})

	item, ok := doc.Paths["/scenes/items/views/view_1/records"]
	require.True(t, ok)
	require.NotNil(t, item.Get)
	require.Equal(t, "view_1_list_ItemsTable", item.Get.OperationID)
}

func TestGenerateObjectSchema(t *testing.T) {
	doc := Generate(sampleApplication(), Options{})

	schema, ok := doc.Components.Schemas["object_1"]
	require.True(t, ok)
	require.Equal(t, "object", schema.Type)

	prop, ok := schema.Properties["field_1"]
	require.True(t, ok)
	require.Equal(t, "string", prop.Type)
	require.Contains(t, schema.Required, "field_1")
}

func TestGenerateSecuritySchemes(t *testing.T) {
	doc := Generate(sampleApplication(), Options{})

	for _, name := range []string{"applicationId", "restApiKey", "userToken"} {
		require.Contains(t, doc.Components.SecuritySchemes, name)
	}

	list := doc.Paths["/objects/object_1/records"].Get
	require.Equal(t, []map[string][]string{{"applicationId": {}, "restApiKey": {}}}, list.Security)
}

func TestGenerateAuthenticatedView(t *testing.T) {
	app := sampleApplication()
	app.Scenes[0].Authenticated = true

	doc := Generate(app, Options{})
	op := doc.Paths["/scenes/items/views/view_1/records"].Get
	require.NotNil(t, op)
	require.Len(t, op.Security, 1)
	require.Contains(t, op.Security[0], "userToken")
	require.Contains(t, op.Responses, "401")
}

func TestGenerateChildPageParameter(t *testing.T) {
	app := sampleApplication()
	app.Scenes = append(app.Scenes, knack.Scene{
		Key:    "scene_2",
		Name:   "Item Detail",
		Slug:   "item-detail",
		Parent: "items",
		Views: []knack.View{
			{
				Key:    "view_2",
				Name:   "Item Details",
				Type:   "details",
				Source: &knack.ViewSource{Object: "object_1"},
				Groups: []knack.ViewGroup{
					{Columns: []knack.GroupColumn{
						{Fields: []knack.FieldRef{{Key: "field_1"}}},
					}},
				},
			},
		},
	})

	doc := Generate(app, Options{})
	op := doc.Paths["/scenes/item-detail/views/view_2/records"].Get
	require.NotNil(t, op)

	var found bool
	for _, p := range op.Parameters {
		if p.Name == "items_id" {
			found = true
			require.Equal(t, "query", p.In)
			require.True(t, p.Required)
		}
	}
	require.True(t, found, "expected items_id parent parameter")
}

func TestGenerateFormViewMethods(t *testing.T) {
	app := sampleApplication()
	form := knack.View{
		Key:    "view_3",
		Name:   "Add Item",
		Type:   "form",
		Source: &knack.ViewSource{Object: "object_1"},
		Groups: []knack.ViewGroup{
			{Columns: []knack.GroupColumn{
				{Inputs: []knack.ViewInput{{Key: "field_1"}}},
			}},
		},
	}
	app.Scenes[0].Views = append(app.Scenes[0].Views, form)

	doc := Generate(app, Options{})
	item := doc.Paths["/scenes/items/views/view_3/records"]
	require.NotNil(t, item.Post, "default form action is create")
	require.Nil(t, item.Put)
	require.NotNil(t, item.Post.RequestBody)

	// Update forms submit with PUT instead.
	app.Scenes[0].Views[1].Action = "update"
	doc = Generate(app, Options{})
	item = doc.Paths["/scenes/items/views/view_3/records"]
	require.NotNil(t, item.Put)
	require.Nil(t, item.Post)
}

func TestGenerateSkipsUnresolvedSource(t *testing.T) {
	app := sampleApplication()
	app.Scenes[0].Views = append(app.Scenes[0].Views, knack.View{
		Key:    "view_9",
		Name:   "Ghost",
		Type:   "table",
		Source: &knack.ViewSource{Object: "object_99"},
		Columns: []knack.ViewColumn{
			{Type: "field", Field: &knack.FieldRef{Key: "field_1"}},
		},
	})

	doc := Generate(app, Options{})
	require.NotContains(t, doc.Paths, "/scenes/items/views/view_9/records")
	require.NotContains(t, doc.Components.Schemas, "view_9")
}

func TestGenerateOptionsOverrideInfo(t *testing.T) {
	doc := Generate(sampleApplication(), Options{Title: "Custom API", Version: "2.3.0"})
	require.Equal(t, "Custom API", doc.Info.Title)
	require.Equal(t, "2.3.0", doc.Info.Version)
}

func TestGenerateIdempotent(t *testing.T) {
	app := sampleApplication()

	first, err := openapi.RenderJSON(Generate(app, Options{}))
	require.NoError(t, err)
	second, err := openapi.RenderJSON(Generate(app, Options{}))
	require.NoError(t, err)

	require.Equal(t, first, second)
}
