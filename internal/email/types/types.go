package types

import "time"

// SMTPConfig holds the settings required to reach a mail server.
// Host and Port are mandatory; when both Username and Password are set
// the session is authenticated over implicit SSL, otherwise it is a
// plain unauthenticated session.
type SMTPConfig struct {
	Host     string        `mapstructure:"host" json:"host"`
	Port     int           `mapstructure:"port" json:"port"`
	Username string        `mapstructure:"username" json:"username"`
	Password string        `mapstructure:"password" json:"password"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"` // dial timeout, transport default when zero
}

// Authenticated reports whether the session will log in.
func (c *SMTPConfig) Authenticated() bool {
	return c.Username != "" && c.Password != ""
}

// Email is one outbound message. Attachments are file-system paths
// resolved at send time; missing or unreadable files are skipped.
type Email struct {
	To          []string          // required, at least one address
	Cc          []string          // optional
	Bcc         []string          // optional; part of the envelope, never a visible header
	From        string            // optional override, falls back to the configured username
	Subject     string
	Body        string
	IsHTML      bool
	Attachments []string          // file paths
	Headers     map[string]string // extra generated headers
}

// ReportConfig is the addressing record for templated report sends.
type ReportConfig struct {
	FromMail string   `json:"from_mail"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	Cc       []string `json:"cc"`
}

// TableRow is one record of report table data. Records are assumed to
// share a uniform key set; missing keys render as empty cells.
type TableRow map[string]any

// SummaryRow is one label/value pair shown in the report summary.
type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ActionButton is an optional call-to-action rendered below the report.
type ActionButton struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Alert severities understood by the renderer. Unknown values fall
// back to a neutral color.
const (
	AlertSuccess = "success"
	AlertWarning = "warning"
	AlertDanger  = "danger"
	AlertInfo    = "info"
)

// Alert is the structured payload rendered into an HTML report body.
// Everything except Type, Title and Message is optional.
type Alert struct {
	Type    string `json:"alert_type"`
	Title   string `json:"alert_title"`
	Message string `json:"alert_message"`

	FileNames []string `json:"file_names,omitempty"` // display-only, distinct from attachments
	Link      string   `json:"alert_link,omitempty"`

	// Columns fixes the table column order. When empty the columns are
	// derived from the first row's keys in sorted order.
	Columns   []string   `json:"columns,omitempty"`
	TableData []TableRow `json:"table_data,omitempty"`

	SummaryData    []SummaryRow      `json:"summary_data,omitempty"`
	TableSummary   []string          `json:"table_summary,omitempty"`
	TotalRecords   int               `json:"total_records,omitempty"`
	ShowPagination bool              `json:"show_pagination,omitempty"`
	FileStatus     map[string]string `json:"file_status,omitempty"`
	ErrorDetails   string            `json:"error_details,omitempty"`
	ActionButton   *ActionButton     `json:"action_button,omitempty"`
	CompanyLogo    string            `json:"company_logo,omitempty"` // cid: reference or URL
	Environment    string            `json:"environment,omitempty"`
	Timestamp      string            `json:"timestamp,omitempty"`
}

// SendReceipt describes a completed delivery.
type SendReceipt struct {
	MessageID  string    `json:"message_id"`
	Recipients []string  `json:"recipients"` // full envelope list: to + cc + bcc
	SentAt     time.Time `json:"sent_at"`
}
