package common

// Request lifecycle statuses.
const (
	Pending   = "Pending"
	Quoted    = "Quoted"
	Processed = "Processed"
)

// Quotation statuses.
const (
	Approved = "Approved"
)

// Request priorities.
const (
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
)

// Price deviation kinds relative to a product's historical average.
const (
	DeviationNew    = "new"
	DeviationGood   = "good"
	DeviationHigh   = "high"
	DeviationNormal = "normal"
)
