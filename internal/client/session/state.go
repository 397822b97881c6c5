package session

import "fmt"

// State is a bootstrap stage of a Session.
type State int

const (
	Uninitialized State = iota
	ConfigResolved
	DeviceParsed
	StoreOpened
	Ready
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ConfigResolved:
		return "config_resolved"
	case DeviceParsed:
		return "device_parsed"
	case StoreOpened:
		return "store_opened"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
