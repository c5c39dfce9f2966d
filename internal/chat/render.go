package chat

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"krk/internal/catalog"
	"krk/internal/prefs"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type styles struct {
	speaker lipgloss.Style
	prompt  lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return styles{speaker: plain, prompt: plain, label: plain, muted: plain, err: plain}
	}
	return styles{
		speaker: r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

var fieldLabels = map[prefs.Field]string{
	prefs.ActorID:  "Actor",
	prefs.GenreID:  "Genre",
	prefs.Language: "Language",
	prefs.DateFrom: "From",
	prefs.DateTo:   "To",
}

// PreferenceRows formats a preference summary as label/value pairs.
func PreferenceRows(lines []prefs.Line) [][2]string {
	rows := make([][2]string, 0, len(lines))
	for _, line := range lines {
		value := line.Value
		switch {
		case value == "":
			value = "Any"
		case line.Label != "":
			value = fmt.Sprintf("%s (%s)", line.Label, line.Value)
		}
		rows = append(rows, [2]string{fieldLabels[line.Field], value})
	}
	return rows
}

// RecommendationTable renders ranked matches as a rounded table.
func RecommendationTable(recs []catalog.Recommendation) string {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		year := rec.Year
		if year == "" {
			year = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(rec.Rank),
			rec.Title,
			year,
			strconv.FormatFloat(rec.Score, 'f', 1, 64),
		})
	}
	return Table([]string{"#", "Title", "Year", "Score"}, rows, 0, 3)
}

// Table renders rows under headers. Columns listed in rightAligned (0-based)
// are right aligned.
func Table(headers []string, rows [][]string, rightAligned ...int) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	right := make(map[int]bool, len(rightAligned))
	for _, idx := range rightAligned {
		right[idx] = true
	}
	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if right[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
