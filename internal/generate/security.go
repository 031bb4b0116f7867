package generate

import (
	"strings"

	"github.com/openfield/knackspec/internal/knack"
)

// Access is the security classification of a view.
type Access int

const (
	// Public operations need only the application id.
	Public Access = iota
	// Authenticated operations additionally need a user token.
	Authenticated
)

// viewRule and sceneRule each inspect one aspect and either return a
// verdict or pass. Rules run in declaration order; the first verdict
// wins, keeping the precedence auditable.
type viewRule func(*knack.View) (Access, bool)

type sceneRule func(*knack.Scene) (Access, bool)

var loginViewTypes = map[string]bool{
	"login":          true,
	"registration":   true,
	"password_reset": true,
}

// protectedKeywords mark names that conventionally imply a logged-in
// context even when no explicit flag is set.
var protectedKeywords = []string{
	"profile", "account", "dashboard", "admin", "secure", "private",
}

// publicViewTypes are inherently safe: they render static or
// navigational content rather than record data.
var publicViewTypes = map[string]bool{
	"landing":   true,
	"menu":      true,
	"search":    true,
	"rich_text": true,
}

var viewRules = []viewRule{
	func(v *knack.View) (Access, bool) {
		if loginViewTypes[v.Type] {
			return Public, true
		}
		return 0, false
	},
	func(v *knack.View) (Access, bool) {
		if len(v.AllowedProfiles) > 0 || v.LimitProfileAccess {
			return Authenticated, true
		}
		return 0, false
	},
	func(v *knack.View) (Access, bool) {
		if v.Source != nil && v.Source.AuthenticatedUser {
			return Authenticated, true
		}
		return 0, false
	},
	func(v *knack.View) (Access, bool) {
		if matchesProtectedKeyword(v.Name, v.Title, v.Description) {
			return Authenticated, true
		}
		return 0, false
	},
}

var sceneRules = []sceneRule{
	func(s *knack.Scene) (Access, bool) {
		if s.Authenticated {
			return Authenticated, true
		}
		return 0, false
	},
	func(s *knack.Scene) (Access, bool) {
		if s.Type == "authentication" {
			return Public, true
		}
		return 0, false
	},
	func(s *knack.Scene) (Access, bool) {
		if len(s.AllowedProfiles) > 0 {
			return Authenticated, true
		}
		return 0, false
	},
	func(s *knack.Scene) (Access, bool) {
		if matchesProtectedKeyword(s.Name) {
			return Authenticated, true
		}
		return 0, false
	},
}

// classifyView decides whether a view's operation is public or needs
// an authenticated user. Order: view-level rules, scene-level rules,
// the ancestor scene chain, then a fail-safe default that protects
// unknown view types.
func classifyView(v *knack.View, scene *knack.Scene, app *knack.Application) Access {
	for _, rule := range viewRules {
		if access, ok := rule(v); ok {
			return access
		}
	}

	if scene != nil {
		if access, ok := applySceneRules(scene); ok {
			return access
		}
		if access, ok := classifyAncestors(scene, app); ok {
			return access
		}
	}

	if publicViewTypes[v.Type] {
		return Public
	}
	return Authenticated
}

func applySceneRules(s *knack.Scene) (Access, bool) {
	for _, rule := range sceneRules {
		if access, ok := rule(s); ok {
			return access, true
		}
	}
	return 0, false
}

// classifyAncestors walks the parent-slug chain applying the scene
// rules at each step. A visited set guards against parent cycles in
// malformed input; revisiting a slug ends the walk with no verdict.
func classifyAncestors(scene *knack.Scene, app *knack.Application) (Access, bool) {
	visited := map[string]bool{scene.Slug: true}
	parent := scene.Parent

	for parent != "" {
		if visited[parent] {
			return 0, false
		}
		visited[parent] = true

		ancestor := app.SceneBySlug(parent)
		if ancestor == nil {
			return 0, false
		}
		if access, ok := applySceneRules(ancestor); ok {
			return access, true
		}
		parent = ancestor.Parent
	}

	return 0, false
}

func matchesProtectedKeyword(texts ...string) bool {
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, kw := range protectedKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
