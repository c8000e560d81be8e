package domain

import "fmt"

// UndefinedValue is shown in place of metadata a device did not report.
const UndefinedValue = "Undefined"

type DeviceID string

type Device struct {
	ID    DeviceID
	State string
	Model string
	// OSVersion and IPAddress are empty when the corresponding probe failed.
	OSVersion string
	IPAddress string
}

func (d Device) ModelOrUndefined() string {
	return orUndefined(d.Model)
}

func (d Device) OSVersionOrUndefined() string {
	return orUndefined(d.OSVersion)
}

func (d Device) IPAddressOrUndefined() string {
	return orUndefined(d.IPAddress)
}

// Summary is the single-line form used by the device selection menu.
func (d Device) Summary() string {
	return fmt.Sprintf("%s\tModel: %s - OS: %s", d.ID, d.ModelOrUndefined(), d.OSVersionOrUndefined())
}

func orUndefined(value string) string {
	if value == "" {
		return UndefinedValue
	}
	return value
}
