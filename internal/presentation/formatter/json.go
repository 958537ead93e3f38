package formatter

import (
	"github.com/bytedance/sonic"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/core/score"
)

// MonthReport is the JSON shape of one month's scores.
type MonthReport struct {
	Year    int           `json:"year"`
	Month   string        `json:"month"`
	Entries []AuthorEntry `json:"entries"`
}

// AuthorEntry is one author's counters within a month.
type AuthorEntry struct {
	AuthorID string              `json:"authorId"`
	Name     string              `json:"name"`
	Record   model.MonthlyRecord `json:"record"`
}

// JSONFormatter serializes the aggregation result for machine consumption
// in the offline analyzer.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(res *score.Result, names map[string]string) (string, error) {
	report := make([]MonthReport, 0, len(res.Months))
	for _, month := range res.Months {
		mr := MonthReport{
			Year:  month.Year,
			Month: month.Month.String(),
		}
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
			mr.Entries = append(mr.Entries, AuthorEntry{
				AuthorID: author,
				Name:     name,
				Record:   *rec,
			})
		}
		report = append(report, mr)
	}

	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
