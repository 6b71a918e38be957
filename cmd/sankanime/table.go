package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/varoOP/sankanime/internal/cache"
	"github.com/varoOP/sankanime/internal/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func summaryRows(items []domain.AnimeSummary) [][]string {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{a.ID, a.Title, a.TVInfo["showType"].String(), a.TVInfo["sub"].String(), a.TVInfo["dub"].String()})
	}
	return rows
}

var summaryHeaders = []string{"ID", "Title", "Type", "Sub", "Dub"}
var summaryAligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight}

// tableFor renders the list results that have a natural tabular form. ok is
// false for anything else.
func tableFor(v any) (out string, ok bool) {
	switch r := v.(type) {
	case *domain.Home:
		counts := r.SectionCounts()
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([][]string, 0, len(names)+1)
		for _, name := range names {
			rows = append(rows, []string{name, fmt.Sprintf("%d", counts[name])})
		}
		rows = append(rows, []string{"genres", fmt.Sprintf("%d", len(r.Genres))})
		return renderTable([]string{"Section", "Entries"}, rows, []columnAlignment{alignLeft, alignRight}), true
	case *domain.CategoryPage:
		return renderTable(summaryHeaders, summaryRows(r.Data), summaryAligns), true
	case *domain.SearchPage:
		return renderTable(summaryHeaders, summaryRows(r.Data), summaryAligns), true
	case *domain.Episodes:
		rows := make([][]string, 0, len(r.Episodes))
		for _, e := range r.Episodes {
			filler := ""
			if e.Filler {
				filler = "yes"
			}
			rows = append(rows, []string{e.EpisodeNo.String(), e.ID, e.Title, filler})
		}
		return renderTable([]string{"No", "ID", "Title", "Filler"}, rows, []columnAlignment{alignRight}), true
	case []domain.Server:
		rows := make([][]string, 0, len(r))
		for _, s := range r {
			rows = append(rows, []string{s.ServerName, s.Type, s.ServerID.String(), s.DataID.String()})
		}
		return renderTable([]string{"Server", "Type", "Server ID", "Data ID"}, rows, nil), true
	case []domain.Suggestion:
		rows := make([][]string, 0, len(r))
		for _, s := range r {
			rows = append(rows, []string{s.ID, s.Title, s.ShowType, s.ReleaseDate})
		}
		return renderTable([]string{"ID", "Title", "Type", "Released"}, rows, nil), true
	case []domain.ScheduleEntry:
		rows := make([][]string, 0, len(r))
		for _, s := range r {
			rows = append(rows, []string{s.Time, s.ID, s.Title, s.EpisodeNo.String()})
		}
		return renderTable([]string{"Time", "ID", "Title", "Episode"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}), true
	case *domain.CharacterPage:
		rows := make([][]string, 0, len(r.Data))
		for _, c := range r.Data {
			actors := make([]string, 0, len(c.VoiceActors))
			for _, va := range c.VoiceActors {
				actors = append(actors, va.Name)
			}
			rows = append(rows, []string{c.Character.Name, c.Character.Cast, strings.Join(actors, ", ")})
		}
		return renderTable([]string{"Character", "Role", "Voice Actors"}, rows, nil), true
	case cache.Info:
		age, stored := "", ""
		if !r.StoredAt.IsZero() {
			stored = r.StoredAt.Format("2006-01-02 15:04:05")
			age = r.Age.Round(time.Second).String()
		}
		rows := [][]string{
			{"Key", r.Key},
			{"Status", string(r.Status)},
			{"Stored At", stored},
			{"Age", age},
			{"Size", fmt.Sprintf("%d bytes", r.Size)},
		}
		if r.Problem != "" {
			rows = append(rows, []string{"Problem", r.Problem})
		}
		return renderTable([]string{"Field", "Value"}, rows, nil), true
	}
	return "", false
}
