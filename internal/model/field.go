package model

// Field identifies one of the six canonical columns every recognized
// table must expose. The set is closed; recognition either resolves all
// six or rejects the row.
type Field int

const (
	FieldItem Field = iota
	FieldCodeInternal
	FieldCodeClient
	FieldDescription
	FieldQuantity
	FieldUnit

	NumFields
)

// Fields lists the canonical fields in their fixed output order.
var Fields = [NumFields]Field{
	FieldItem,
	FieldCodeInternal,
	FieldCodeClient,
	FieldDescription,
	FieldQuantity,
	FieldUnit,
}

// String returns the report column label for the field.
func (f Field) String() string {
	switch f {
	case FieldItem:
		return "ITEM"
	case FieldCodeInternal:
		return "INTERNAL CODE"
	case FieldCodeClient:
		return "CLIENT CODE"
	case FieldDescription:
		return "DESCRIPTION"
	case FieldQuantity:
		return "QUANTITY"
	case FieldUnit:
		return "UNIT"
	default:
		return "UNKNOWN"
	}
}

// HeaderMapping maps each canonical field to its column index within a
// header row. A mapping is only ever constructed complete: partial
// matches are discarded by the header matcher.
type HeaderMapping [NumFields]int
