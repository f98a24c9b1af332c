// export_test.go exports private functions for white-box testing.
package interpreter

// Exported for tests.
var (
	ParseDefinition = parseDefinition
	CutKeyword      = cutKeyword
)
