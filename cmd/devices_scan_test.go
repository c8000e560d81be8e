package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/badb/internal/application"
	"github.com/bnema/badb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceScanModelShowsCurrentProbe(t *testing.T) {
	m := newDeviceScanModel()
	assert.Contains(t, m.View(), "Listing attached devices...")

	updated, cmd := m.Update(deviceProbedMsg{progress: application.ProbeProgress{Device: "DEVICE2", Index: 2, Total: 3}})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "Probing DEVICE2 (2/3)...")
}

func TestDeviceScanModelKeepsResultWhenDone(t *testing.T) {
	devices := []domain.Device{{ID: "DEVICE1", Model: "Pixel_5"}}

	updated, cmd := newDeviceScanModel().Update(deviceScanDoneMsg{devices: devices})
	require.NotNil(t, cmd)

	result, ok := updated.(deviceScanModel)
	require.True(t, ok)
	assert.True(t, result.done)
	assert.Equal(t, devices, result.devices)
	assert.Empty(t, result.View())
}

func TestRunDeviceScanReturnsScannedDevices(t *testing.T) {
	want := []domain.Device{{ID: "DEVICE1"}, {ID: "DEVICE2"}}
	var reported []application.ProbeProgress

	scan := func(_ context.Context, onProbe application.ProbeFunc) ([]domain.Device, error) {
		for i, device := range want {
			progress := application.ProbeProgress{Device: device.ID, Index: i + 1, Total: len(want)}
			reported = append(reported, progress)
			onProbe(progress)
		}
		return want, nil
	}

	got, err := runDeviceScan(context.Background(), &bytes.Buffer{}, scan)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, reported, 2)
}

func TestRunDeviceScanReturnsScanError(t *testing.T) {
	scan := func(context.Context, application.ProbeFunc) ([]domain.Device, error) {
		return nil, domain.ErrNoDevicesFound
	}

	_, err := runDeviceScan(context.Background(), &bytes.Buffer{}, scan)
	require.True(t, errors.Is(err, domain.ErrNoDevicesFound))
}
