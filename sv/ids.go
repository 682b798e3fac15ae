// Package sv transcribes an illustrative slice of the IEEE 1800 grammar
// productions onto the cst combinator substrate: enough of the numeric/
// string lexical layer, net and data declarations, statements, and a
// module-instantiation fragment to exercise every harness the substrate
// provides. The full grammar has hundreds of productions; this package is
// deliberately a sample, not a complete SystemVerilog front end.
package sv

import cst "github.com/erihsu/sv-parser-go"

// Production IDs for the harnesses in this package. Any stable injective
// mapping suffices; grammar packages own their own ID space.
const (
	idExpression cst.ProductionID = iota
	idDataType
)
