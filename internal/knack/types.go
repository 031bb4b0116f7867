package knack

import "encoding/json"

// Application is the root of a Knack application schema: the data
// objects, the UI scenes, and enough metadata to describe the API.
type Application struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description,omitempty"`
	Account     *Account `json:"account,omitempty"`
	Objects     []Object `json:"objects"`
	Scenes      []Scene  `json:"scenes"`
}

type Account struct {
	Slug string `json:"slug,omitempty"`
}

// ObjectByKey returns the object with the given key, or nil.
func (a *Application) ObjectByKey(key string) *Object {
	for i := range a.Objects {
		if a.Objects[i].Key == key {
			return &a.Objects[i]
		}
	}
	return nil
}

// SceneBySlug returns the scene with the given slug, or nil.
func (a *Application) SceneBySlug(slug string) *Scene {
	for i := range a.Scenes {
		if a.Scenes[i].Slug == slug {
			return &a.Scenes[i]
		}
	}
	return nil
}

// Object is a data table definition.
type Object struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Inflections *Inflections `json:"inflections,omitempty"`
	Fields      []Field      `json:"fields"`
}

type Inflections struct {
	Singular string `json:"singular,omitempty"`
	Plural   string `json:"plural,omitempty"`
}

// FieldByKey returns the object's field with the given key, or nil.
func (o *Object) FieldByKey(key string) *Field {
	for i := range o.Fields {
		if o.Fields[i].Key == key {
			return &o.Fields[i]
		}
	}
	return nil
}

// Field is one column definition on an object.
type Field struct {
	Key          string        `json:"key"`
	Name         string        `json:"name"`
	Type         FieldType     `json:"type"`
	Required     bool          `json:"required,omitempty"`
	Unique       bool          `json:"unique,omitempty"`
	Format       *FieldFormat  `json:"format,omitempty"`
	Relationship *Relationship `json:"relationship,omitempty"`
}

// FieldType enumerates the Knack field kinds the generator maps.
// The set is closed on Knack's side; anything outside it degrades to
// a generic string schema.
type FieldType string

const (
	FieldShortText      FieldType = "short_text"
	FieldName           FieldType = "name"
	FieldPassword       FieldType = "password"
	FieldParagraphText  FieldType = "paragraph_text"
	FieldPhone          FieldType = "phone"
	FieldAddress        FieldType = "address"
	FieldEmail          FieldType = "email"
	FieldNumber         FieldType = "number"
	FieldAutoIncrement  FieldType = "auto_increment"
	FieldCurrency       FieldType = "currency"
	FieldDateTime       FieldType = "date_time"
	FieldMultipleChoice FieldType = "multiple_choice"
	FieldBoolean        FieldType = "boolean"
	FieldConnection     FieldType = "connection"
	FieldFile           FieldType = "file"
	FieldImage          FieldType = "image"
	FieldSignature      FieldType = "signature"
	FieldUserRoles      FieldType = "user_roles"
	FieldEquation       FieldType = "equation"
	FieldTimer          FieldType = "timer"
)

// FieldFormat carries the type-specific format sub-structure. Only the
// pieces the generator consumes are decoded.
type FieldFormat struct {
	Options []string `json:"options,omitempty"`
	Default string   `json:"default,omitempty"`
	Type    string   `json:"type,omitempty"`
}

// Relationship describes a connection field's target object and the
// cardinality on each side ("one" or "many").
type Relationship struct {
	Object    string `json:"object"`
	Has       string `json:"has,omitempty"`
	BelongsTo string `json:"belongs_to,omitempty"`
}

// Scene is a UI page. Parent, when set, names another scene's slug and
// forms the page hierarchy. Malformed input may produce parent cycles;
// callers walking the chain must keep a visited set.
type Scene struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Parent          string   `json:"parent,omitempty"`
	Type            string   `json:"type,omitempty"`
	Authenticated   bool     `json:"authenticated,omitempty"`
	AllowedProfiles []string `json:"allowed_profiles,omitempty"`
	Views           []View   `json:"views"`
}

// View is a UI component inside a scene. Type is open-ended on the
// platform side; the generator recognizes table, form, details and
// search and ignores the rest. The nested layout fields overlap
// between view types: Columns serves table result columns and the
// outer columns of the second details layout, Groups serves form
// input groups, details field groups and search filter groups.
type View struct {
	Key                string       `json:"key"`
	Name               string       `json:"name"`
	Type               string       `json:"type"`
	Title              string       `json:"title,omitempty"`
	Description        string       `json:"description,omitempty"`
	Source             *ViewSource  `json:"source,omitempty"`
	Action             string       `json:"action,omitempty"`
	LimitProfileAccess bool         `json:"limit_profile_access,omitempty"`
	AllowedProfiles    []string     `json:"allowed_profiles,omitempty"`
	Columns            []ViewColumn `json:"columns,omitempty"`
	Groups             []ViewGroup  `json:"groups,omitempty"`
	Results            *ViewResults `json:"results,omitempty"`
}

// ViewSource binds a view to the object it reads or writes.
type ViewSource struct {
	Object            string `json:"object"`
	AuthenticatedUser bool   `json:"authenticated_user,omitempty"`
}

// ViewColumn is a table/search result column, or an outer column of
// the alternate details layout (where it carries Groups instead of a
// field reference).
type ViewColumn struct {
	Type   string         `json:"type,omitempty"`
	Field  *FieldRef      `json:"field,omitempty"`
	Groups []DetailsGroup `json:"groups,omitempty"`
}

// FieldRef is a bare reference to a field by key.
type FieldRef struct {
	Key string `json:"key"`
}

// ViewGroup is a form input group, a details field group, or a search
// filter group, depending on the owning view's type.
type ViewGroup struct {
	Columns []GroupColumn `json:"columns,omitempty"`
}

// GroupColumn holds form inputs or details/search field references.
type GroupColumn struct {
	Inputs []ViewInput `json:"inputs,omitempty"`
	Fields []FieldRef  `json:"fields,omitempty"`
}

// ViewInput is one form input. The field key appears either directly
// on the input or nested under a field reference; both occur in real
// schemas.
type ViewInput struct {
	Key   string    `json:"key,omitempty"`
	Field *FieldRef `json:"field,omitempty"`
}

// DetailsGroup is a group inside the alternate details layout. Each
// inner column is either a single field reference or an array of
// them; the raw JSON is kept and decoded leniently at extraction
// time.
type DetailsGroup struct {
	Columns []json.RawMessage `json:"columns,omitempty"`
}

// ViewResults holds a search view's result column list.
type ViewResults struct {
	Columns []ViewColumn `json:"columns,omitempty"`
}
