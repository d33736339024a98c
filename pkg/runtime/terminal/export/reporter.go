package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Handler renders a finished sales report
type Handler interface {
	Handle(report *domain.SalesReport) error
}

// NewHandler returns the renderer for the given output format
func NewHandler(format string, writer io.Writer) (Handler, error) {
	switch format {
	case FormatTable, "":
		return NewReporter(writer), nil
	case FormatJSON:
		return NewJSONReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q, expected %s or %s", format, FormatTable, FormatJSON)
	}
}

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        16,
		ValueWidth:       14,
		UnitWidth:        10,
		DescriptionWidth: 60,
	}
}

// Reporter prints the report as fixed-width tables, one per seller
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const tableTemplate = `
{{.Title}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Total Revenue: {{printf "%.2f" .TotalAmount}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}`

func (c *Reporter) Handle(report *domain.SalesReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unit,
				c.config.DescriptionWidth, truncate(desc, c.config.DescriptionWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, adapters.MapSalesReportToReport(report))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// JSONReporter writes the report in the same shape the web API returns
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (j *JSONReporter) Handle(report *domain.SalesReport) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapSalesReportDomainToApi(report)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
