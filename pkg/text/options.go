package text

// Options controls the types and policies used by the rewrite rules
type Options struct {
	// MapKeyType and MapValueType are written into rewritten Map.of calls
	MapKeyType   string
	MapValueType string

	// VarType is the declared type that replaces var
	VarType string

	// ListElementType is the type parameter added to bare List declarations
	ListElementType string

	// SchemaLoaders are factory methods whose var declarations are always
	// rewritten, even when VarCatchAll is off
	SchemaLoaders []string

	// VarCatchAll rewrites every remaining var declaration to VarType
	VarCatchAll bool
}

// DefaultOptions returns the options the migration was written for
func DefaultOptions() Options {
	return Options{
		MapKeyType:      "String",
		MapValueType:    "CsdlSchema",
		VarType:         "CsdlSchema",
		ListElementType: "String",
		SchemaLoaders: []string{
			"loadLargeSchema",
			"loadCircularDependencySchema",
			"loadMultiDependencySchema",
		},
		VarCatchAll: true,
	}
}
