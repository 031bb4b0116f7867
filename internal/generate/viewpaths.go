package generate

import (
	"fmt"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/openfield/knackspec/internal/openapi"
)

// viewSchema builds the component schema for the fields a view
// surfaces. Keys that resolve to no field (even through one
// connection hop) are dropped rather than failing the view.
func viewSchema(v *knack.View, source *knack.Object, app *knack.Application) *openapi.Schema {
	keys := viewFieldKeys(v)
	if len(keys) == 0 {
		return nil
	}

	schema := &openapi.Schema{
		Type:        "object",
		Description: fmt.Sprintf("Fields displayed by the %s view", v.Name),
		Properties:  map[string]*openapi.Schema{},
	}

	for _, key := range keys {
		f := resolveField(key, source, app)
		if f == nil {
			continue
		}
		schema.Properties[f.Key] = schemaForField(f)
		if f.Required {
			schema.Required = append(schema.Required, f.Key)
		}
	}

	if len(schema.Properties) == 0 {
		return nil
	}
	return schema
}

// viewPath emits the single path and operation for one scene/view
// pair: GET for read views (single record for details, a list
// otherwise), POST or PUT for forms by action discriminator. Returns
// an empty path when the view surfaces no resolvable fields.
func viewPath(v *knack.View, scene *knack.Scene, app *knack.Application, access Access) (string, openapi.PathItem, *openapi.Schema) {
	source := app.ObjectByKey(v.Source.Object)
	schema := viewSchema(v, source, app)
	if schema == nil {
		return "", openapi.PathItem{}, nil
	}

	path := fmt.Sprintf("/scenes/%s/views/%s/records", scene.Slug, v.Key)
	ref := &openapi.Schema{Ref: "#/components/schemas/" + v.Key}

	security := []map[string][]string{{schemeApplicationID: {}}}
	responses := map[string]openapi.Response{}
	var errors []string
	if access == Authenticated {
		security = []map[string][]string{{schemeApplicationID: {}, schemeUserToken: {}}}
		errors = append(errors, "401")
	}

	op := &openapi.Operation{
		Tags:     []string{scene.Name},
		Security: security,
	}

	if param := parentParamName(scene, app); param != "" {
		op.Parameters = append(op.Parameters, openapi.Parameter{
			Name:        param,
			In:          "query",
			Required:    true,
			Description: "Identifier of the parent page record",
			Schema:      &openapi.Schema{Type: "string", Format: "uuid"},
		})
	}

	item := openapi.PathItem{}

	switch v.Type {
	case "form":
		op.RequestBody = &openapi.RequestBody{
			Required: true,
			Content:  jsonContent(ref),
		}
		responses["200"] = openapi.Response{
			Description: "Submitted record",
			Content:     jsonContent(ref),
		}
		errors = append(errors, "400")
		if v.Action == "update" {
			op.OperationID = operationID(v.Key, "update", v.Name)
			op.Summary = fmt.Sprintf("Submit the %s form (update)", v.Name)
			op.Responses = withErrorStubs(responses, errors...)
			item.Put = op
		} else {
			op.OperationID = operationID(v.Key, "create", v.Name)
			op.Summary = fmt.Sprintf("Submit the %s form", v.Name)
			op.Responses = withErrorStubs(responses, errors...)
			item.Post = op
		}

	case "details":
		op.OperationID = operationID(v.Key, "get", v.Name)
		op.Summary = fmt.Sprintf("Get the record shown by %s", v.Name)
		responses["200"] = openapi.Response{
			Description: "Displayed record",
			Content:     jsonContent(ref),
		}
		errors = append(errors, "404")
		op.Responses = withErrorStubs(responses, errors...)
		item.Get = op

	default:
		op.OperationID = operationID(v.Key, "list", v.Name)
		op.Summary = fmt.Sprintf("List records shown by %s", v.Name)
		op.Parameters = append(op.Parameters, listParameters()...)
		responses["200"] = openapi.Response{
			Description: "Displayed records",
			Content: jsonContent(&openapi.Schema{
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"records":       {Type: "array", Items: ref},
					"total_records": {Type: "integer"},
				},
			}),
		}
		op.Responses = withErrorStubs(responses, errors...)
		item.Get = op
	}

	return path, item, schema
}
