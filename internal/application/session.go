package application

import "github.com/bnema/badb/internal/domain"

// Session carries the device pinned for the lifetime of one CLI invocation.
// Once pinned, a device is never unpinned.
type Session struct {
	pinned domain.DeviceID
}

func NewSession(pinned domain.DeviceID) *Session {
	return &Session{pinned: pinned}
}

func (s *Session) PinnedDevice() (domain.DeviceID, bool) {
	return s.pinned, s.pinned != ""
}

func (s *Session) Pin(id domain.DeviceID) {
	s.pinned = id
}
