package models

type MonitorState int

const (
	MonitorStateStopped MonitorState = iota
	MonitorStateRunning
)

func (s MonitorState) String() string {
	switch s {
	case MonitorStateRunning:
		return "running"
	default:
		return "stopped"
	}
}
