// Package cohort groups source songs into decades.
package cohort

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Row is one song from a source CSV file.
type Row struct {
	ReleaseYear string
	URL         string
	Title       string
	Artist      string
}

// ID returns the song id from the row's URL.
func (r Row) ID() string {
	return ExtractID(r.URL)
}

// ExtractID returns the last non-empty path segment of a song URL.
func ExtractID(url string) string {
	url = strings.SplitN(url, "?", 2)[0]
	segments := strings.Split(url, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segments[i]); s != "" {
			return s
		}
	}
	return ""
}

// Decade labels a release year with its decade, such as "1980s". Blank or
// unparseable years have no decade.
func Decade(year string) string {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y <= 0 {
		return ""
	}
	return fmt.Sprintf("%ds", y/10*10)
}

type Cohort struct {
	Key string
	IDs []string
}

// Group sorts rows by release year and collects the song ids of each decade.
// Rows without a decade are dropped. Cohorts come back in ascending order.
func Group(rows []Row) []Cohort {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReleaseYear < sorted[j].ReleaseYear
	})

	var cohorts []Cohort
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	for _, row := range sorted {
		key := Decade(row.ReleaseYear)
		id := row.ID()
		if key == "" || id == "" {
			continue
		}

		i, ok := index[key]
		if !ok {
			i = len(cohorts)
			index[key] = i
			seen[key] = make(map[string]bool)
			cohorts = append(cohorts, Cohort{Key: key})
		}
		if seen[key][id] {
			continue
		}
		seen[key][id] = true
		cohorts[i].IDs = append(cohorts[i].IDs, id)
	}

	sort.SliceStable(cohorts, func(i, j int) bool {
		return decadeYear(cohorts[i].Key) < decadeYear(cohorts[j].Key)
	})
	return cohorts
}

func decadeYear(key string) int {
	y, _ := strconv.Atoi(strings.TrimSuffix(key, "s"))
	return y
}

// ReadCSV reads source rows from a CSV file with a header row. The
// release_year and spotify columns are required; title and artist are used
// when present. At most limit rows are read when limit > 0.
func ReadCSV(r io.Reader, limit int) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range []string{"release_year", "spotify"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for limit <= 0 || len(rows) < limit {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, Row{
			ReleaseYear: field(record, "release_year"),
			URL:         field(record, "spotify"),
			Title:       field(record, "title"),
			Artist:      field(record, "artist"),
		})
	}
	return rows, nil
}

// Without drops the cohorts whose key is in keys.
func Without(cohorts []Cohort, keys ...string) []Cohort {
	skip := make(map[string]bool, len(keys))
	for _, k := range keys {
		skip[k] = true
	}

	var out []Cohort
	for _, c := range cohorts {
		if !skip[c.Key] {
			out = append(out, c)
		}
	}
	return out
}
