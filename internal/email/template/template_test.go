package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
)

func TestAlertColor(t *testing.T) {
	tests := []struct {
		alertType string
		want      string
	}{
		{types.AlertSuccess, "#28a745"},
		{types.AlertWarning, "#ffc107"},
		{types.AlertDanger, "#dc3545"},
		{types.AlertInfo, "#17a2b8"},
		{"unknown", "#333333"},
		{"", "#333333"},
	}

	for _, tt := range tests {
		t.Run(tt.alertType, func(t *testing.T) {
			assert.Equal(t, tt.want, AlertColor(tt.alertType))
		})
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		opacity float64
		want    string
	}{
		{"with hash", "#28a745", 1, "rgba(40, 167, 69, 1)"},
		{"without hash", "28a745", 0.5, "rgba(40, 167, 69, 0.5)"},
		{"malformed falls back", "xyz", 0.2, "rgba(51, 51, 51, 0.2)"},
		{"bad hex digits fall back", "#zzzzzz", 1, "rgba(51, 51, 51, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBA(tt.hex, tt.opacity))
		})
	}
}

func TestTableHeaders(t *testing.T) {
	t.Run("derived from first row, sorted", func(t *testing.T) {
		alert := &types.Alert{
			TableData: []types.TableRow{
				{"P": "A", "Q": 1},
				{"P": "B", "Q": 2},
			},
		}
		assert.Equal(t, []string{"P", "Q"}, TableHeaders(alert))
	})

	t.Run("explicit columns win", func(t *testing.T) {
		alert := &types.Alert{
			Columns:   []string{"Q", "P"},
			TableData: []types.TableRow{{"P": "A", "Q": 1}},
		}
		assert.Equal(t, []string{"Q", "P"}, TableHeaders(alert))
	})

	t.Run("no table data", func(t *testing.T) {
		assert.Nil(t, TableHeaders(&types.Alert{}))
	})
}

func TestRenderAlert(t *testing.T) {
	alert := &types.Alert{
		Type:    types.AlertSuccess,
		Title:   "ETL Process Complete",
		Message: "All ETL processes completed successfully.",
		TableData: []types.TableRow{
			{"P": "A", "Q": 1},
			{"P": "B", "Q": 2},
		},
		SummaryData: []types.SummaryRow{
			{Label: "Total", Value: "2"},
		},
		FileNames:   []string{"data1.csv", "data2.csv"},
		Link:        "https://dashboard.example.com",
		Environment: "production",
		Timestamp:   "2024-01-22 15:30:00",
	}

	body, err := RenderAlert(alert)
	require.NoError(t, err)

	assert.Contains(t, body, "ETL Process Complete")
	assert.Contains(t, body, "All ETL processes completed successfully.")
	assert.Contains(t, body, "#28a745")
	// Both rows pass through unchanged under the derived headers.
	assert.Contains(t, body, ">A</td>")
	assert.Contains(t, body, ">B</td>")
	assert.Contains(t, body, ">1</td>")
	assert.Contains(t, body, ">2</td>")
	assert.Contains(t, body, ">P</th>")
	assert.Contains(t, body, ">Q</th>")
	assert.Contains(t, body, "data1.csv")
	assert.Contains(t, body, "https://dashboard.example.com")
	assert.Contains(t, body, "production")
}

func TestRenderAlertUnknownTypeFallsBack(t *testing.T) {
	body, err := RenderAlert(&types.Alert{
		Type:    "catastrophic",
		Title:   "T",
		Message: "M",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "#333333")
}

func TestRenderAlertRaggedRows(t *testing.T) {
	// Records missing a key render empty cells, not errors.
	body, err := RenderAlert(&types.Alert{
		Type:    types.AlertWarning,
		Title:   "T",
		Message: "M",
		Columns: []string{"P", "Q"},
		TableData: []types.TableRow{
			{"P": "A", "Q": 1},
			{"P": "B"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, body, ">B</td>")
}

func TestRenderAlertDeterministic(t *testing.T) {
	alert := &types.Alert{
		Type:    types.AlertInfo,
		Title:   "T",
		Message: "M",
		TableData: []types.TableRow{
			{"A": 1, "B": 2, "C": 3},
		},
		FileStatus: map[string]string{
			"b.csv": "done",
			"a.csv": "done",
			"c.csv": "failed",
		},
	}

	first, err := RenderAlert(alert)
	require.NoError(t, err)

	for range 10 {
		again, err := RenderAlert(alert)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderAlertNil(t *testing.T) {
	_, err := RenderAlert(nil)
	assert.Error(t, err)
}

func TestRenderAlertEscapesHTML(t *testing.T) {
	body, err := RenderAlert(&types.Alert{
		Type:    types.AlertDanger,
		Title:   "<script>alert(1)</script>",
		Message: "M",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>alert(1)</script>")
}
