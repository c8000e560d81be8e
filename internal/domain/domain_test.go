package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceSummaryFallsBackToUndefined(t *testing.T) {
	tests := []struct {
		name   string
		device Device
		want   string
	}{
		{
			name:   "full metadata",
			device: Device{ID: "ABC123", Model: "Pixel_5", OSVersion: "14"},
			want:   "ABC123\tModel: Pixel_5 - OS: 14",
		},
		{
			name:   "missing os version",
			device: Device{ID: "ABC123", Model: "Pixel_5"},
			want:   "ABC123\tModel: Pixel_5 - OS: Undefined",
		},
		{
			name:   "zero value metadata",
			device: Device{ID: "emulator-5554"},
			want:   "emulator-5554\tModel: Undefined - OS: Undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.device.Summary())
		})
	}
}

func TestDeviceIPAddressOrUndefined(t *testing.T) {
	assert.Equal(t, "10.0.0.42", Device{IPAddress: "10.0.0.42"}.IPAddressOrUndefined())
	assert.Equal(t, UndefinedValue, Device{}.IPAddressOrUndefined())
}

func TestToolErrorKeepsStderrVerbatim(t *testing.T) {
	err := &ToolError{Program: "adb", Args: []string{"shell", "ls"}, ExitCode: 1, Stderr: "error: device offline\n"}

	assert.Equal(t, "error: device offline\n", err.Error())
}

func TestToolErrorWithoutStderrDescribesExit(t *testing.T) {
	err := &ToolError{Program: "adb", Args: []string{"shell", "false"}, ExitCode: 1}

	assert.Equal(t, "adb shell false: exit status 1", err.Error())
}

func TestToolErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("run bridge command: %w", &ToolError{Stderr: "boom"})

	var toolErr *ToolError
	require.True(t, errors.As(wrapped, &toolErr))
	assert.Equal(t, "boom", toolErr.Stderr)
}
