package models

import (
	"fmt"
	"time"
)

// DeviceStatus is the lifecycle status of a registered device.
type DeviceStatus int

const (
	DeviceActive DeviceStatus = iota
	DeviceUnactive
	DeviceDeleted
	DeviceInvalidated
)

func (s DeviceStatus) String() string {
	switch s {
	case DeviceActive:
		return "active"
	case DeviceUnactive:
		return "unactive"
	case DeviceDeleted:
		return "deleted"
	case DeviceInvalidated:
		return "invalidated"
	default:
		return fmt.Sprintf("DeviceStatus(%d)", int(s))
	}
}

// Device is the identity of this installation as issued by the server at
// registration. It is built from the registration payload only and never
// read back from the local store.
type Device struct {
	UUID       string
	UserUUID   string
	Host       string
	HostPubKey string

	TimestampCreation   time.Time
	TimestampLastUpdate time.Time

	Status DeviceStatus
}
