package service

// Notifier pushes analysis progress to connected clients (avoids
// import cycle with the transport layer)
type Notifier interface {
	NotifyProgress(assessmentID, step string, percent int)
	NotifyComplete(assessmentID string)
	NotifyError(assessmentID, message string)
}

// noopNotifier stands in until the WebSocket hub is attached
type noopNotifier struct{}

func (noopNotifier) NotifyProgress(string, string, int) {}
func (noopNotifier) NotifyComplete(string)              {}
func (noopNotifier) NotifyError(string, string)         {}
