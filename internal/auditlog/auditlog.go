// Package auditlog keeps an append-only CSV record of audit runs.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp time.Time
	RunID     string
	Source    string
	Status    string
	Chart     int
	Balances  int
	Dropped   int
	Findings  int
	Critical  int
	Attention int
	Info      int
}

// Header is the CSV header of the audit log.
const Header = "timestamp,run_id,source,status,chart,balances,dropped,findings,critical,attention,info"

const (
	numFields    = 11
	colTimestamp = 0
	colRunID     = 1
	colSource    = 2
	colStatus    = 3
	colChart     = 4
	colBalances  = 5
	colDropped   = 6
	colFindings  = 7
	colCritical  = 8
	colAttention = 9
	colInfo      = 10
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colSource] = e.Source
	row[colStatus] = e.Status
	row[colChart] = strconv.Itoa(e.Chart)
	row[colBalances] = strconv.Itoa(e.Balances)
	row[colDropped] = strconv.Itoa(e.Dropped)
	row[colFindings] = strconv.Itoa(e.Findings)
	row[colCritical] = strconv.Itoa(e.Critical)
	row[colAttention] = strconv.Itoa(e.Attention)
	row[colInfo] = strconv.Itoa(e.Info)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	e := Entry{
		Timestamp: ts,
		RunID:     record[colRunID],
		Source:    record[colSource],
		Status:    record[colStatus],
	}
	counts := []struct {
		col int
		dst *int
	}{
		{colChart, &e.Chart},
		{colBalances, &e.Balances},
		{colDropped, &e.Dropped},
		{colFindings, &e.Findings},
		{colCritical, &e.Critical},
		{colAttention, &e.Attention},
		{colInfo, &e.Info},
	}
	for _, c := range counts {
		n, err := strconv.Atoi(record[c.col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[c.col], err)
		}
		*c.dst = n
	}
	return e, nil
}

// Append writes entries to the log at path, creating the file, its
// directory and the header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the log at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
