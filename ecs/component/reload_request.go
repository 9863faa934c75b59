package component

// ReloadRequest signals the game loop to rebuild the scene at the end of the
// tick.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
