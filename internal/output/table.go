// Package output renders CLI tables for listing and detail views.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/charmss/admin-client/internal/model"
)

var statusColors = map[model.Status]*color.Color{
	model.StatusActive:    color.New(color.FgGreen),
	model.StatusPending:   color.New(color.FgYellow),
	model.StatusSuspended: color.New(color.FgRed),
	model.StatusOnline:    color.New(color.FgCyan),
}

func coloredStatus(s model.Status) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

// WritePerformers renders one fetched page plus its pagination footer.
func WritePerformers(w io.Writer, page model.PerformerPage) {
	t := newTable(w)
	t.Header([]string{"id", "name", "stage name", "email", "status", "rating", "shows", "country", "languages"})

	rows := make([][]string, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, []string{
			p.ID,
			p.FullName,
			p.StageName,
			p.Email,
			coloredStatus(p.Status),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
			strconv.Itoa(p.TotalShows),
			p.Country,
			strings.Join(p.Languages, ","),
		})
	}
	t.Bulk(rows)
	t.Render()

	m := page.Meta
	fmt.Fprintf(w, "\npage %d/%d, %d total (limit %d)\n", m.Page, m.TotalPages, m.Total, m.Limit)
}

// WriteAlbums renders albums with a row per asset.
func WriteAlbums(w io.Writer, albums []model.Album) {
	t := newTable(w)
	t.Header([]string{"album", "title", "asset", "type", "url"})

	rows := [][]string{}
	for _, a := range albums {
		if len(a.Assets) == 0 {
			rows = append(rows, []string{a.ID, a.Title, "-", "-", "-"})
			continue
		}
		for _, as := range a.Assets {
			rows = append(rows, []string{a.ID, a.Title, as.ID, as.Type, as.URL})
		}
	}
	t.Bulk(rows)
	t.Render()
}
