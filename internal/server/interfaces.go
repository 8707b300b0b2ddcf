package server

// Server runs the enabled transports of the novel hub.
type Server interface {
	// RunServer serves until the process is signalled to stop.
	RunServer()

	// Shutdown stops every transport, draining in-flight requests.
	Shutdown()
}
