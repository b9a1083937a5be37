package eventpubsub

const (
	NewSnapshotEvent    = "NewSnapshotEvent"
	AlertUpEvent        = "AlertUpEvent"
	AlertDownEvent      = "AlertDownEvent"
	MonitorStoppedEvent = "MonitorStoppedEvent"
	Error               = "DefaultError"
)
