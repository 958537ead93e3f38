package formatter

// Row is one line of the report table: either a month header or one
// author's counters for that month. Rows belonging to a month stay
// contiguous under its header and months stay in chronological order.
type Row struct {
	Month string // month label; set only on header rows
	Name  string // author display name; set only on data rows

	Morning     int
	Evening     int
	Proper      int
	MissedDays  int
	Infractions int
	Alternate   int
}

// IsHeader reports whether the row is a month header.
func (r Row) IsHeader() bool {
	return r.Month != ""
}
