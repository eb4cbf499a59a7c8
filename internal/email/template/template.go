package template

import (
	"bytes"
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"sort"
	"strconv"
	"sync"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
	apperrors "github.com/DSI-OMS-RPA/email-notifier/internal/pkg/errors"
)

//go:embed alert.html
var alertTemplateSource string

// alertColors maps alert severities to their display colors.
var alertColors = map[string]string{
	types.AlertSuccess: "#28a745",
	types.AlertWarning: "#ffc107",
	types.AlertDanger:  "#dc3545",
	types.AlertInfo:    "#17a2b8",
}

// defaultAlertColor is used for unknown severities.
const defaultAlertColor = "#333333"

var (
	tmplOnce sync.Once
	tmpl     *htmltemplate.Template
	tmplErr  error
)

// alertTemplate returns the compiled template, shared process-wide.
// The template is a pure function of its embedded source, so one
// compilation is safe under concurrent sends.
func alertTemplate() (*htmltemplate.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = htmltemplate.New("alert").Funcs(htmltemplate.FuncMap{
			// Typed as CSS so the context escaper accepts the rgba()
			// value inside style attributes.
			"rgba": func(hexColor string, opacity float64) htmltemplate.CSS {
				return htmltemplate.CSS(RGBA(hexColor, opacity))
			},
			"cell": cellValue,
		}).Parse(alertTemplateSource)
	})
	return tmpl, tmplErr
}

// AlertColor resolves an alert severity to its display color.
func AlertColor(alertType string) string {
	if color, ok := alertColors[alertType]; ok {
		return color
	}
	return defaultAlertColor
}

// RGBA converts a hex color to an rgba() string with the given opacity,
// used by the template for tinted backgrounds. Malformed input falls
// back to the neutral color so rendering never fails mid-template.
func RGBA(hexColor string, opacity float64) string {
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}
	if len(hexColor) != 6 {
		return fmt.Sprintf("rgba(51, 51, 51, %g)", opacity)
	}
	r, errR := strconv.ParseUint(hexColor[0:2], 16, 8)
	g, errG := strconv.ParseUint(hexColor[2:4], 16, 8)
	b, errB := strconv.ParseUint(hexColor[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return fmt.Sprintf("rgba(51, 51, 51, %g)", opacity)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, opacity)
}

// cellValue looks up a column in a table row; missing keys render as
// empty cells rather than failing the whole report.
func cellValue(row types.TableRow, column string) any {
	if v, ok := row[column]; ok {
		return v
	}
	return ""
}

// TableHeaders returns the column order for an alert's table: the
// explicit Columns when set, otherwise the first row's keys sorted.
func TableHeaders(alert *types.Alert) []string {
	if len(alert.Columns) > 0 {
		return alert.Columns
	}
	if len(alert.TableData) == 0 {
		return nil
	}
	headers := make([]string, 0, len(alert.TableData[0]))
	for key := range alert.TableData[0] {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	return headers
}

// alertContext is the variable set handed to the template.
type alertContext struct {
	HTMLTitle    string
	Alert        *types.Alert
	AlertColor   string
	TableHeaders []string
}

// RenderAlert renders the structured alert payload into a complete
// HTML report body. Output is deterministic for identical input.
func RenderAlert(alert *types.Alert) (string, error) {
	if alert == nil {
		return "", apperrors.New(apperrors.ErrInvalidParams, "alert payload is required")
	}

	t, err := alertTemplate()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrTemplateRender)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, &alertContext{
		HTMLTitle:    "Alert Notification",
		Alert:        alert,
		AlertColor:   AlertColor(alert.Type),
		TableHeaders: TableHeaders(alert),
	}); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrTemplateRender)
	}

	return buf.String(), nil
}
