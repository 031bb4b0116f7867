package generate

import (
	"fmt"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/openfield/knackspec/internal/openapi"
)

// objectSchema builds the component schema for one object: an "id"
// property plus one property per field, with required fields listed
// at the schema level.
func objectSchema(obj *knack.Object) *openapi.Schema {
	schema := &openapi.Schema{
		Type:        "object",
		Description: fmt.Sprintf("%s record", obj.Name),
		Properties: map[string]*openapi.Schema{
			"id": {Type: "string", Format: "uuid", ReadOnly: true},
		},
	}

	for i := range obj.Fields {
		f := &obj.Fields[i]
		schema.Properties[f.Key] = schemaForField(f)
		if f.Required {
			schema.Required = append(schema.Required, f.Key)
		}
	}

	return schema
}

// listParameters is the fixed pagination and sort parameter set every
// record-list operation carries.
func listParameters() []openapi.Parameter {
	return []openapi.Parameter{
		{Name: "page", In: "query", Description: "Page number", Schema: &openapi.Schema{Type: "integer", Default: 1}},
		{Name: "rows_per_page", In: "query", Description: "Records per page", Schema: &openapi.Schema{Type: "integer", Default: 25}},
		{Name: "sort_field", In: "query", Description: "Field key to sort by", Schema: &openapi.Schema{Type: "string"}},
		{Name: "sort_order", In: "query", Description: "Sort direction", Schema: &openapi.Schema{Type: "string", Enum: []any{"asc", "desc"}}},
	}
}

// objectPaths emits the schema-metadata and CRUD paths for one
// object. Every operation requires both the application id and the
// REST API key.
func objectPaths(obj *knack.Object) map[string]openapi.PathItem {
	name := obj.Name
	singular, plural := name, name
	if obj.Inflections != nil {
		if obj.Inflections.Singular != "" {
			singular = obj.Inflections.Singular
		}
		if obj.Inflections.Plural != "" {
			plural = obj.Inflections.Plural
		}
	}

	ref := &openapi.Schema{Ref: "#/components/schemas/" + obj.Key}
	security := keySecurity()
	tags := []string{name}

	recordResponse := openapi.Response{
		Description: fmt.Sprintf("A %s record", singular),
		Content:     jsonContent(ref),
	}

	listSchema := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"records":       {Type: "array", Items: ref},
			"total_records": {Type: "integer"},
			"current_page":  {Type: "integer"},
			"total_pages":   {Type: "integer"},
		},
	}

	paths := map[string]openapi.PathItem{}

	paths["/objects/"+obj.Key] = openapi.PathItem{
		Get: &openapi.Operation{
			OperationID: operationID(obj.Key, "schema", name),
			Summary:     fmt.Sprintf("Get the %s object schema", name),
			Tags:        tags,
			Security:    security,
			Responses: withErrorStubs(map[string]openapi.Response{
				"200": {
					Description: "Object schema metadata",
					Content: jsonContent(&openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"object": {Type: "object"},
						},
					}),
				},
			}, "401", "404"),
		},
	}

	paths["/objects/"+obj.Key+"/records"] = openapi.PathItem{
		Get: &openapi.Operation{
			OperationID: operationID(obj.Key, "list", plural),
			Summary:     fmt.Sprintf("List %s records", plural),
			Tags:        tags,
			Security:    security,
			Parameters:  listParameters(),
			Responses: withErrorStubs(map[string]openapi.Response{
				"200": {
					Description: fmt.Sprintf("A page of %s records", plural),
					Content:     jsonContent(listSchema),
				},
			}, "400", "401"),
		},
		Post: &openapi.Operation{
			OperationID: operationID(obj.Key, "create", singular),
			Summary:     fmt.Sprintf("Create a %s record", singular),
			Tags:        tags,
			Security:    security,
			RequestBody: &openapi.RequestBody{
				Required: true,
				Content:  jsonContent(ref),
			},
			Responses: withErrorStubs(map[string]openapi.Response{
				"200": recordResponse,
			}, "400", "401"),
		},
	}

	paths["/objects/"+obj.Key+"/records/{id}"] = openapi.PathItem{
		Get: &openapi.Operation{
			OperationID: operationID(obj.Key, "get", singular),
			Summary:     fmt.Sprintf("Get a %s record", singular),
			Tags:        tags,
			Security:    security,
			Parameters:  []openapi.Parameter{recordIDParameter()},
			Responses: withErrorStubs(map[string]openapi.Response{
				"200": recordResponse,
			}, "401", "404"),
		},
		Put: &openapi.Operation{
			OperationID: operationID(obj.Key, "update", singular),
			Summary:     fmt.Sprintf("Update a %s record", singular),
			Tags:        tags,
			Security:    security,
			Parameters:  []openapi.Parameter{recordIDParameter()},
			RequestBody: &openapi.RequestBody{
				Required: true,
				Content:  jsonContent(ref),
			},
			Responses: withErrorStubs(map[string]openapi.Response{
				"200": recordResponse,
			}, "400", "401", "404"),
		},
		Delete: &openapi.Operation{
			OperationID: operationID(obj.Key, "delete", singular),
			Summary:     fmt.Sprintf("Delete a %s record", singular),
			Tags:        tags,
			Security:    security,
			Parameters:  []openapi.Parameter{recordIDParameter()},
			Responses: withErrorStubs(map[string]openapi.Response{
				"200": {
					Description: "Deletion confirmation",
					Content: jsonContent(&openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"delete": {Type: "boolean"},
						},
					}),
				},
			}, "401", "404"),
		},
	}

	return paths
}

func recordIDParameter() openapi.Parameter {
	return openapi.Parameter{
		Name:        "id",
		In:          "path",
		Required:    true,
		Description: "Record identifier",
		Schema:      &openapi.Schema{Type: "string", Format: "uuid"},
	}
}
