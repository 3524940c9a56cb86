package query

// FieldSpec ties a request-facing field name to its column and data type.
type FieldSpec struct {
	Column string
	Type   DataType
}

// Schema is the allow-list of queryable fields for one entity. Filters and
// sort orders referencing anything else fail validation.
type Schema map[string]FieldSpec
