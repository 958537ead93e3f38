package formatter

import (
	"github.com/rivertam/pants-off-podrick/internal/core/score"
)

// BuildRows flattens an aggregation result into table rows: one header per
// qualifying month followed by one row per author, in the result's
// deterministic author order. names maps author ids to display names;
// authors missing from it fall back to their raw id, so an unresolved
// identity never drops a row.
func BuildRows(res *score.Result, names map[string]string) []Row {
	var rows []Row
	for _, month := range res.Months {
		rows = append(rows, Row{Month: month.String()})

		records := res.Scores[month]
		for _, author := range res.Authors {
			rec, ok := records[author]
			if !ok {
				continue
			}
			name, ok := names[author]
			if !ok || name == "" {
				name = author
			}
			rows = append(rows, Row{
				Name:        name,
				Morning:     rec.Morning,
				Evening:     rec.Evening,
				Proper:      rec.Proper,
				MissedDays:  rec.MissedDays,
				Infractions: rec.Infractions,
				Alternate:   rec.Alternate,
			})
		}
	}
	return rows
}
