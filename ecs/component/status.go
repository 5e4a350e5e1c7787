package component

// Status is the short-lived message line in the corner of the screen.
type Status struct {
	Text string
	TTL  float64

	// Debug keeps a permanent line with tick diagnostics.
	Debug     bool
	DebugText string
}

var StatusComponent = NewComponent[Status]()
