package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// rawRow is the display shape of one trip in the raw-data browser. Column
// names follow the source CSV headers, followed by the derived fields.
type rawRow struct {
	Row          int    `dataframe:"#"`
	StartTime    string `dataframe:"Start Time"`
	EndTime      string `dataframe:"End Time"`
	TripDuration int    `dataframe:"Trip Duration"`
	StartStation string `dataframe:"Start Station"`
	EndStation   string `dataframe:"End Station"`
	UserType     string `dataframe:"User Type"`
	Gender       string `dataframe:"Gender"`
	BirthYear    string `dataframe:"Birth Year"`
	Month        int    `dataframe:"month"`
	DayOfWeek    int    `dataframe:"day_of_week"`
	Hour         int    `dataframe:"hour"`
}

const rawTimeLayout = "2006-01-02 15:04:05"

// RenderPage writes the rows of page as an aligned table. Optional columns
// the city does not carry are left out. An empty page writes a short notice.
func RenderPage(w io.Writer, page domain.Page, schema domain.Schema) error {
	if page.IsEmpty() {
		_, err := fmt.Fprintln(w, "\nNo more rows to display.")
		return err
	}

	rows := make([]rawRow, len(page.Records))
	for i, rec := range page.Records {
		rows[i] = toRawRow(page.Offset+i, rec)
	}

	df := dataframe.LoadStructs(rows)
	if drop := absentColumns(schema); len(drop) > 0 {
		df = df.Drop(drop)
	}
	if df.Err != nil {
		return fmt.Errorf("handler.RenderPage: %w", df.Err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw)
	for _, record := range df.Records() {
		fmt.Fprintln(tw, strings.Join(record, "\t"))
	}
	return tw.Flush()
}

func toRawRow(index int, rec domain.TripRecord) rawRow {
	row := rawRow{
		Row:          index,
		StartTime:    rec.StartTime.Format(rawTimeLayout),
		TripDuration: int(rec.TripDuration),
		StartStation: rec.StartStation,
		EndStation:   rec.EndStation,
		UserType:     rec.UserType,
		Gender:       rec.Gender,
		Month:        int(rec.Derived.Month),
		DayOfWeek:    int(rec.Derived.Weekday),
		Hour:         rec.Derived.Hour,
	}
	if rec.EndTime != nil {
		row.EndTime = rec.EndTime.Format(rawTimeLayout)
	}
	if rec.BirthYear != nil {
		row.BirthYear = strconv.Itoa(*rec.BirthYear)
	}
	return row
}

// absentColumns lists the optional display columns the schema lacks.
func absentColumns(schema domain.Schema) []string {
	var cols []string
	if !schema.HasEndTime {
		cols = append(cols, "End Time")
	}
	if !schema.HasGender {
		cols = append(cols, "Gender")
	}
	if !schema.HasBirthYear {
		cols = append(cols, "Birth Year")
	}
	return cols
}
