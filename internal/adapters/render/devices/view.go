package devices

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/badb/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	toml "github.com/pelletier/go-toml/v2"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
)

func ParseFormat(raw string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(raw)))
	switch format {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatTOML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (table|json|toml)", raw)
	}
}

type RenderOptions struct {
	Format Format
}

var tableHeaders = []string{"Serial", "State", "Model", "OS", "IP"}

type deviceRecord struct {
	Serial    string `json:"serial" toml:"serial"`
	State     string `json:"state,omitempty" toml:"state,omitempty"`
	Model     string `json:"model" toml:"model"`
	OSVersion string `json:"os_version,omitempty" toml:"os_version,omitempty"`
	IPAddress string `json:"ip_address,omitempty" toml:"ip_address,omitempty"`
}

type tomlDocument struct {
	Devices []deviceRecord `toml:"devices"`
}

// Render formats devices for display. The table format is aligned text, the
// other formats are machine readable.
func Render(devices []domain.Device, opts RenderOptions) (string, error) {
	switch opts.Format {
	case FormatTable, "":
		return renderProgram(devices)
	case FormatJSON:
		encoded, err := json.MarshalIndent(toRecords(devices), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode devices as json: %w", err)
		}
		return string(encoded), nil
	case FormatTOML:
		encoded, err := toml.Marshal(tomlDocument{Devices: toRecords(devices)})
		if err != nil {
			return "", fmt.Errorf("encode devices as toml: %w", err)
		}
		return strings.TrimSuffix(string(encoded), "\n"), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

func toRecords(devices []domain.Device) []deviceRecord {
	records := make([]deviceRecord, 0, len(devices))
	for _, device := range devices {
		records = append(records, deviceRecord{
			Serial:    string(device.ID),
			State:     device.State,
			Model:     device.ModelOrUndefined(),
			OSVersion: device.OSVersion,
			IPAddress: device.IPAddress,
		})
	}
	return records
}

func renderTable(devices []domain.Device, s styles) string {
	rows := make([][]string, 0, len(devices))
	for _, device := range devices {
		rows = append(rows, []string{
			string(device.ID),
			device.State,
			device.ModelOrUndefined(),
			device.OSVersionOrUndefined(),
			device.IPAddressOrUndefined(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) && rows[row][col] == domain.UndefinedValue {
				return s.undefined
			}
			return s.cell
		})

	return t.Render()
}
