package domain

// Axis distinguishes row hints from column hints.
type Axis string

const (
	AxisRow Axis = "row"
	AxisCol Axis = "col"
)

// Operation is a cage arithmetic operation. The empty operation marks a
// single-cell cage.
type Operation string

const (
	OpNone     Operation = ""
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "×"
	OpDivide   Operation = "÷"
)
