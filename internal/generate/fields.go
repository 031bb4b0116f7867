package generate

import (
	"fmt"

	"github.com/openfield/knackspec/internal/knack"
	"github.com/openfield/knackspec/internal/openapi"
)

const paragraphMaxLength = 10000

// schemaForField maps one Knack field definition to an OpenAPI schema
// fragment. Total over the field-type enumeration: anything outside
// it degrades to a generic string schema flagged in the description.
// Required-ness is recorded on the owning object schema, not here.
func schemaForField(f *knack.Field) *openapi.Schema {
	switch f.Type {
	case knack.FieldShortText, knack.FieldName, knack.FieldPassword,
		knack.FieldPhone, knack.FieldAddress:
		return &openapi.Schema{Type: "string"}

	case knack.FieldParagraphText:
		maxLen := paragraphMaxLength
		return &openapi.Schema{Type: "string", MaxLength: &maxLen}

	case knack.FieldEmail:
		return &openapi.Schema{Type: "string", Format: "email"}

	case knack.FieldNumber:
		return &openapi.Schema{Type: "number"}

	case knack.FieldAutoIncrement:
		return &openapi.Schema{Type: "integer", ReadOnly: true}

	case knack.FieldCurrency:
		return &openapi.Schema{Type: "number", Format: "float"}

	case knack.FieldDateTime:
		return &openapi.Schema{Type: "string", Format: "date-time"}

	case knack.FieldMultipleChoice:
		s := &openapi.Schema{Type: "string"}
		if f.Format != nil && len(f.Format.Options) > 0 {
			for _, opt := range f.Format.Options {
				s.Enum = append(s.Enum, opt)
			}
			if f.Format.Default != "" {
				s.Default = f.Format.Default
			}
		}
		return s

	case knack.FieldBoolean:
		return &openapi.Schema{Type: "boolean"}

	case knack.FieldConnection:
		s := &openapi.Schema{Type: "string", Format: "uuid"}
		if f.Relationship != nil {
			s.Description = fmt.Sprintf("Record identifier of a connected %s record (%s/%s)",
				f.Relationship.Object, f.Relationship.Has, f.Relationship.BelongsTo)
		}
		return s

	case knack.FieldFile, knack.FieldImage, knack.FieldSignature:
		return &openapi.Schema{Type: "string", Format: "uri"}

	case knack.FieldUserRoles:
		return &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}

	case knack.FieldEquation:
		return &openapi.Schema{Type: "number", ReadOnly: true, Description: "Calculated field"}

	case knack.FieldTimer:
		return &openapi.Schema{Type: "number", Description: "Elapsed time in seconds"}

	default:
		return &openapi.Schema{
			Type:        "string",
			Description: fmt.Sprintf("Unknown field type %q", f.Type),
		}
	}
}
