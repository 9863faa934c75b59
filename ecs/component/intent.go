package component

// Intent holds edge-triggered requests raised by buttons or keys. Each flag
// is cleared by the system that consumes it in the tick it is observed.
type Intent struct {
	Attack bool
	Jump   bool
	Reload bool
}

var IntentComponent = NewComponent[Intent]()
