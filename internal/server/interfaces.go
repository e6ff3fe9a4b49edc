package server

// Server is the relay lifecycle.
//
// RunServer blocks until a termination signal arrives and the listener has
// drained. Shutdown stops serving without waiting for a signal.
type Server interface {
	RunServer()
	Shutdown()
}
