package frame

// System is one step of the frame loop. Systems keep their own state between
// frames and run in registration order.
type System interface {
	Execute(frame *UpdateFrame)
}
