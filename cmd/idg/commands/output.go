package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/governance-client/internal/constants"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// column describes one table column of T.
type column[T any] struct {
	header string
	value  func(T) string
}

func (a *App) outputFormat() string {
	if a.config == nil {
		return constants.FormatTable
	}

	return a.config.Output
}

// renderList prints a page of resources in the configured format.
func renderList[T any](cmd *cobra.Command, app *App, list *governance.ListResponse[T], columns []column[T]) error {
	out := cmd.OutOrStdout()

	if list == nil {
		list = &governance.ListResponse[T]{}
	}

	switch app.outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, list)
	case constants.FormatYAML:
		return writeYAML(out, list)
	}

	if len(list.Items) == 0 {
		_, _ = fmt.Fprintln(out, "No results found")

		return nil
	}

	table := tablewriter.NewWriter(out)

	headers := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.header)
	}

	table.Header(headers...)

	for _, item := range list.Items {
		row := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			row = append(row, col.value(item))
		}

		err := table.Append(row...)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if list.Total > len(list.Items) {
		_, _ = fmt.Fprintf(out, "Showing %d of %d\n", len(list.Items), list.Total)
	}

	return nil
}

// renderItem prints a single resource as a property/value table or as a
// JSON or YAML document.
func renderItem[T any](cmd *cobra.Command, app *App, item *T, columns []column[T]) error {
	out := cmd.OutOrStdout()

	if item == nil {
		_, _ = fmt.Fprintln(out, "No content")

		return nil
	}

	switch app.outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, item)
	case constants.FormatYAML:
		return writeYAML(out, item)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, col := range columns {
		err := table.Append(col.header, col.value(*item))
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func writeJSON(out io.Writer, value interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(out io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close() //nolint:wrapcheck // flush only
}

var taskColumns = []column[governance.Task]{
	{"ID", func(t governance.Task) string { return t.ID }},
	{"Type", func(t governance.Task) string { return orNA(t.Type) }},
	{"Status", func(t governance.Task) string { return statusText(t.Status) }},
}

// statusText renders an upper-case API status such as "IN_PROGRESS" as "In Progress".
func statusText(status string) string {
	if status == "" {
		return constants.NotAvailable
	}

	words := strings.ReplaceAll(strings.ToLower(status), "_", " ")

	return cases.Title(language.English).String(words)
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func refName(ref *governance.Reference) string {
	if ref == nil {
		return constants.NotAvailable
	}

	if ref.Name != "" {
		return ref.Name
	}

	return ref.ID
}

func timeText(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

func countText(n int) string {
	return strconv.Itoa(n)
}

// maskToken keeps the first few characters of token visible.
func maskToken(token string) string {
	if len(token) <= constants.TokenVisibleChars {
		return constants.MaskedSecret
	}

	return token[:constants.TokenVisibleChars] + constants.MaskedSecret
}

func sortedKeys(m map[string]interface{}) []string {
	return slices.Sorted(maps.Keys(m))
}
