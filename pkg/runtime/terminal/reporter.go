package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/budget-atlas/pkg/models/domain"
)

// Reporter outputs reports to the console as a plain indented list
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}{{if .Year}} (FY {{.Year}}){{end}}
Total Amount: {{.Currency}} {{printf "%.2f" .TotalAmount}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}{{indent .Depth}}- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}{{if .Description}}
{{indent .Depth}}  {{.Description}}{{end}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(template.FuncMap{
		"indent": func(depth int) string { return strings.Repeat("  ", depth) },
	}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
