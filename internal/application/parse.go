package application

import (
	"strconv"
	"strings"

	"github.com/bnema/badb/internal/domain"
)

const (
	modelKey     = "model:"
	routeSrcMark = "src "
)

// parseDeviceList reads the output of "devices -l". The first line is the
// header; every other non-empty line describes one device.
func parseDeviceList(output string) []domain.Device {
	lines := strings.Split(output, "\n")
	devices := make([]domain.Device, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		device := domain.Device{
			ID:    domain.DeviceID(fields[0]),
			Model: domain.UndefinedValue,
		}
		rest := fields[1:]
		if len(rest) > 0 && !strings.Contains(rest[0], ":") {
			device.State = rest[0]
			rest = rest[1:]
		}
		for _, field := range rest {
			if model, ok := strings.CutPrefix(field, modelKey); ok {
				if model != "" {
					device.Model = model
				}
				break
			}
		}

		devices = append(devices, device)
	}

	return devices
}

// parseRouteSource extracts the source address of the first route that has
// one from "ip route" output.
func parseRouteSource(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		_, after, found := strings.Cut(line, routeSrcMark)
		if !found {
			continue
		}

		fields := strings.Fields(after)
		if len(fields) == 0 || !strings.HasPrefix(after, fields[0]) {
			return "", false
		}
		return fields[0], true
	}

	return "", false
}

// parseChoice validates a 1-based menu index against count candidates.
func parseChoice(input string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}
