package generate

import "github.com/openfield/knackspec/internal/knack"

// resolveField finds the field behind a view field key. It first
// checks the view's own source object, then follows the object's
// connection fields one hop to their target objects, matching Knack's
// convention that a view on object A may surface fields of a directly
// connected object B. Deeper connection chains are not followed.
func resolveField(key string, source *knack.Object, app *knack.Application) *knack.Field {
	if source == nil {
		return nil
	}

	if f := source.FieldByKey(key); f != nil {
		return f
	}

	for i := range source.Fields {
		conn := &source.Fields[i]
		if conn.Type != knack.FieldConnection || conn.Relationship == nil {
			continue
		}
		target := app.ObjectByKey(conn.Relationship.Object)
		if target == nil {
			continue
		}
		if f := target.FieldByKey(key); f != nil {
			return f
		}
	}

	return nil
}
