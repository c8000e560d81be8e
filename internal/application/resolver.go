package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/badb/internal/domain"
	"github.com/bnema/badb/internal/ports"
	"github.com/rs/zerolog"
)

const (
	osVersionProperty = "ro.build.version.release"
	selectionHeader   = "Please choose a device:"
	selectionPrompt   = "==> "
	invalidChoice     = "Invalid choice.\n"
)

var (
	listDevicesArgs = []string{"devices", "-l"}
	osProbeArgs     = []string{"shell", "getprop", osVersionProperty}
	ipProbeArgs     = []string{"shell", "ip", "route"}
)

type Resolver struct {
	executor *Executor
	prompter ports.Prompter
	session  *Session
	logger   zerolog.Logger
}

func newResolver(executor *Executor, prompter ports.Prompter, session *Session, logger zerolog.Logger) *Resolver {
	return &Resolver{
		executor: executor,
		prompter: prompter,
		session:  session,
		logger:   logger,
	}
}

// ProbeProgress is reported before a device is probed. Index is 1-based.
type ProbeProgress struct {
	Device domain.DeviceID
	Index  int
	Total  int
}

// ProbeFunc receives probe progress. It is called from the enumerating
// goroutine and must not block for long.
type ProbeFunc func(ProbeProgress)

// EnumerateDevices lists the attached devices and probes each one, in order,
// for its OS version and IP address. Probe failures leave the field empty.
func (r *Resolver) EnumerateDevices(ctx context.Context) ([]domain.Device, error) {
	return r.enumerate(ctx, nil)
}

func (r *Resolver) enumerate(ctx context.Context, onProbe ProbeFunc) ([]domain.Device, error) {
	output, err := r.executor.RunOn(ctx, "", listDevicesArgs)
	if err != nil {
		return nil, fmt.Errorf("list attached devices: %w", err)
	}

	devices := parseDeviceList(output)
	for i := range devices {
		if onProbe != nil {
			onProbe(ProbeProgress{Device: devices[i].ID, Index: i + 1, Total: len(devices)})
		}
		devices[i].OSVersion = r.probeOSVersion(ctx, devices[i].ID)
		devices[i].IPAddress = r.probeIPAddress(ctx, devices[i].ID)
	}

	return devices, nil
}

func (r *Resolver) probeOSVersion(ctx context.Context, id domain.DeviceID) string {
	output, err := r.executor.RunOn(ctx, id, osProbeArgs)
	if err != nil {
		r.logger.Debug().Err(err).Str("device", string(id)).Msg("os version probe failed")
		return ""
	}
	return strings.TrimSpace(output)
}

func (r *Resolver) probeIPAddress(ctx context.Context, id domain.DeviceID) string {
	output, err := r.executor.RunOn(ctx, id, ipProbeArgs)
	if err != nil {
		r.logger.Debug().Err(err).Str("device", string(id)).Msg("ip address probe failed")
		return ""
	}

	ip, ok := parseRouteSource(output)
	if !ok {
		r.logger.Debug().Str("device", string(id)).Msg("no source address in route table")
		return ""
	}
	return ip
}

// SelectDevice asks the user to choose one of the attached devices and pins
// it in the session. It keeps asking until the answer is a valid index.
func (r *Resolver) SelectDevice(ctx context.Context) (domain.DeviceID, error) {
	devices, err := r.EnumerateDevices(ctx)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", domain.ErrNoDevicesFound
	}

	menu := selectionMenu(devices)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := r.prompter.Notify(menu); err != nil {
			return "", fmt.Errorf("show device menu: %w", err)
		}

		answer, err := r.prompter.Ask(ctx, selectionPrompt)
		if err != nil {
			return "", fmt.Errorf("read device choice: %w", err)
		}

		if index, ok := parseChoice(answer, len(devices)); ok {
			chosen := devices[index].ID
			r.session.Pin(chosen)
			r.logger.Debug().Str("device", string(chosen)).Msg("pinned device for session")
			return chosen, nil
		}

		if err := r.prompter.Notify(invalidChoice); err != nil {
			return "", fmt.Errorf("show invalid choice: %w", err)
		}
	}
}

func selectionMenu(devices []domain.Device) string {
	var b strings.Builder
	b.WriteString(selectionHeader)
	b.WriteString("\n")
	for i, device := range devices {
		fmt.Fprintf(&b, "%d - %s\n", i+1, device.Summary())
	}
	return b.String()
}
