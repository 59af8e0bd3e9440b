// Package export reads and writes the waste log as CSV. Exported files
// round-trip: importing what was exported reproduces the same records
// (IDs are reassigned, content and timestamps are preserved).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// wasteHeader is the fixed column order for waste-log CSV files
var wasteHeader = []string{"area", "shift", "category", "count", "note", "created_at"}

// WriteWasteCSV writes the observations to w with a header row.
// Timestamps are formatted as RFC 3339 in UTC.
func WriteWasteCSV(w io.Writer, observations []*models.WasteObservation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(wasteHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, obs := range observations {
		record := []string{
			obs.Area,
			obs.Shift,
			string(obs.Category),
			strconv.Itoa(obs.Count),
			obs.Note,
			obs.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadWasteCSV parses observations from r. The header row is required and
// must match the exported column order. Category values are validated
// against the fixed seven-category set.
func ReadWasteCSV(r io.Reader) ([]*models.WasteObservation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(wasteHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, col := range wasteHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, header[i], col)
		}
	}

	var observations []*models.WasteObservation
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record on line %d: %w", line, err)
		}

		category, err := models.ParseWasteCategory(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		count, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid count %q: %w", line, record[3], err)
		}

		createdAt, err := time.Parse(time.RFC3339, record[5])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timestamp %q: %w", line, record[5], err)
		}

		observations = append(observations, &models.WasteObservation{
			Area:      record[0],
			Shift:     record[1],
			Category:  category,
			Count:     count,
			Note:      record[4],
			CreatedAt: createdAt,
		})
	}

	return observations, nil
}
