package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/badb/internal/application"
	"github.com/bnema/badb/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type deviceScan func(ctx context.Context, onProbe application.ProbeFunc) ([]domain.Device, error)

type deviceProbedMsg struct {
	progress application.ProbeProgress
}

type deviceScanDoneMsg struct {
	devices []domain.Device
	err     error
}

// deviceScanModel follows a device scan: first the listing, then one probe
// per attached device.
type deviceScanModel struct {
	spinner spinner.Model
	probing application.ProbeProgress
	devices []domain.Device
	err     error
	done    bool
}

func newDeviceScanModel() deviceScanModel {
	return deviceScanModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
	}
}

func (m deviceScanModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m deviceScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case deviceProbedMsg:
		m.probing = msg.progress
		return m, nil
	case deviceScanDoneMsg:
		m.done = true
		m.devices = msg.devices
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m deviceScanModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.status())
}

func (m deviceScanModel) status() string {
	if m.probing.Device == "" {
		return "Listing attached devices..."
	}

	return fmt.Sprintf("Probing %s (%d/%d)...", m.probing.Device, m.probing.Index, m.probing.Total)
}

// runDeviceScan runs scan in the background and reports its progress on
// output until it finishes.
func runDeviceScan(ctx context.Context, output io.Writer, scan deviceScan) ([]domain.Device, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		newDeviceScanModel(),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	go func() {
		devices, err := scan(ctx, func(progress application.ProbeProgress) {
			p.Send(deviceProbedMsg{progress: progress})
		})
		p.Send(deviceScanDoneMsg{devices: devices, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(deviceScanModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final device scan model type %T", finalModel)
	}

	return result.devices, result.err
}
