package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoDevicesFound    = errors.New("no devices found")
	ErrInputClosed       = errors.New("input closed")
	ErrBridgeUnavailable = errors.New("bridge tool unavailable")
)

// ToolError is a non-zero exit of the bridge tool. Stderr is kept verbatim.
type ToolError struct {
	Program  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	if strings.TrimSpace(e.Stderr) != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s %s: exit status %d", e.Program, strings.Join(e.Args, " "), e.ExitCode)
}
