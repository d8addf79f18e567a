package service

// Emitter is the analytics collaborator. Calls are fire-and-forget:
// implementations must swallow their own failures and never block the
// operation that emitted the event.
type Emitter interface {
	Emit(event string, properties map[string]interface{})
}
