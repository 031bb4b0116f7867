package generate

import (
	"fmt"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/openfield/knackspec/internal/openapi"
)

// Security scheme component names referenced by every operation.
const (
	schemeApplicationID = "applicationId"
	schemeRESTAPIKey    = "restApiKey"
	schemeUserToken     = "userToken"
)

// Options overrides document metadata otherwise derived from the
// application.
type Options struct {
	Title   string
	Version string
}

// Generate transforms one application schema into an OpenAPI 3.1
// document: CRUD paths per object, one operation per scene view, and
// the component schemas both reference. Structural gaps in the input
// (unresolved source objects, unknown field or view types) degrade
// locally and never abort generation.
func Generate(app *knack.Application, opts Options) *openapi.Document {
	doc := &openapi.Document{
		OpenAPI: "3.1.0",
		Info: openapi.Info{
			Title:       app.Name + " API",
			Description: fmt.Sprintf("REST API for the %s Knack application", app.Name),
			Version:     "1.0.0",
		},
		Servers: []openapi.Server{
			{URL: "https://api.knack.com/v1", Description: "Knack API"},
		},
		Paths: map[string]openapi.PathItem{},
		Components: openapi.Components{
			Schemas:         map[string]*openapi.Schema{},
			SecuritySchemes: securitySchemes(),
		},
	}

	if opts.Title != "" {
		doc.Info.Title = opts.Title
	}
	if opts.Version != "" {
		doc.Info.Version = opts.Version
	}

	for i := range app.Objects {
		obj := &app.Objects[i]
		doc.Components.Schemas[obj.Key] = objectSchema(obj)
		doc.Tags = append(doc.Tags, openapi.Tag{
			Name:        obj.Name,
			Description: fmt.Sprintf("Operations on %s records", obj.Name),
		})
		for path, item := range objectPaths(obj) {
			doc.Paths[path] = item
		}
	}

	for i := range app.Scenes {
		scene := &app.Scenes[i]
		for j := range scene.Views {
			v := &scene.Views[j]
			if v.Source == nil || app.ObjectByKey(v.Source.Object) == nil {
				continue
			}

			access := classifyView(v, scene, app)
			path, item, schema := viewPath(v, scene, app, access)
			if schema == nil {
				continue
			}

			doc.Components.Schemas[v.Key] = schema
			doc.Paths[path] = item
		}
	}

	return doc
}

func securitySchemes() map[string]openapi.SecurityScheme {
	return map[string]openapi.SecurityScheme{
		schemeApplicationID: {
			Type:        "apiKey",
			In:          "header",
			Name:        "X-Knack-Application-Id",
			Description: "Knack application identifier",
		},
		schemeRESTAPIKey: {
			Type:        "apiKey",
			In:          "header",
			Name:        "X-Knack-REST-API-Key",
			Description: "Knack REST API key",
		},
		schemeUserToken: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
			Description:  "Knack user session token",
		},
	}
}

// keySecurity is the object-API requirement: application id and REST
// key together.
func keySecurity() []map[string][]string {
	return []map[string][]string{
		{schemeApplicationID: {}, schemeRESTAPIKey: {}},
	}
}

func jsonContent(schema *openapi.Schema) map[string]openapi.MediaType {
	return map[string]openapi.MediaType{
		"application/json": {Schema: schema},
	}
}

var errorStubs = map[string]string{
	"400": "Invalid request",
	"401": "Authentication credentials missing or invalid",
	"404": "Record not found",
}

// withErrorStubs attaches standard error responses to an operation's
// response map.
func withErrorStubs(responses map[string]openapi.Response, codes ...string) map[string]openapi.Response {
	for _, code := range codes {
		responses[code] = openapi.Response{Description: errorStubs[code]}
	}
	return responses
}
