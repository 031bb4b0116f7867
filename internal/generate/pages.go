package generate

import "github.com/openfield/knackspec/internal/knack"

// isChildPage reports whether a scene is scoped to a single parent
// record, which is exactly when it carries a parent slug.
func isChildPage(scene *knack.Scene) bool {
	return scene.Parent != ""
}

// parentParamName returns the query parameter name identifying the
// parent record of a child page, or "" for top-level scenes. When the
// parent slug does not resolve to a known scene the raw slug is still
// used, so a child page always gets a syntactically valid parameter.
func parentParamName(scene *knack.Scene, app *knack.Application) string {
	if !isChildPage(scene) {
		return ""
	}

	if parent := app.SceneBySlug(scene.Parent); parent != nil {
		return parent.Slug + "_id"
	}
	return scene.Parent + "_id"
}
