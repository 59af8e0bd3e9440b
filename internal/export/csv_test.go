package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretedriver/gemba/internal/models"
)

func sampleObservations() []*models.WasteObservation {
	return []*models.WasteObservation{
		{
			Area:      "Dock 1",
			Shift:     "day",
			Category:  models.WasteWaiting,
			Count:     2,
			Note:      "waiting on parts cart",
			CreatedAt: time.Date(2026, time.March, 2, 8, 15, 0, 0, time.UTC),
		},
		{
			Area:      "Line 3",
			Shift:     "night",
			Category:  models.WasteDefects,
			Count:     1,
			Note:      "note with, comma and \"quotes\"",
			CreatedAt: time.Date(2026, time.March, 2, 22, 40, 0, 0, time.UTC),
		},
	}
}

func TestWasteCSVRoundTrip(t *testing.T) {
	original := sampleObservations()

	var buf bytes.Buffer
	require.NoError(t, WriteWasteCSV(&buf, original))

	parsed, err := ReadWasteCSV(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(original))

	for i, want := range original {
		got := parsed[i]
		assert.Equal(t, want.Area, got.Area)
		assert.Equal(t, want.Shift, got.Shift)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Count, got.Count)
		assert.Equal(t, want.Note, got.Note)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "CreatedAt mismatch at %d", i)
	}
}

func TestWriteWasteCSVEmptyLog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWasteCSV(&buf, nil))

	// Header only
	assert.Equal(t, "area,shift,category,count,note,created_at\n", buf.String())
}

func TestReadWasteCSVRejectsEmptyFile(t *testing.T) {
	_, err := ReadWasteCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrEmptyFile))
}

func TestReadWasteCSVRejectsBadHeader(t *testing.T) {
	_, err := ReadWasteCSV(strings.NewReader("a,b,c,d,e,f\n"))
	assert.True(t, errors.Is(err, ErrBadHeader))
}

func TestReadWasteCSVRejectsUnknownCategory(t *testing.T) {
	input := "area,shift,category,count,note,created_at\n" +
		"Dock 1,day,Rework,1,,2026-03-02T08:15:00Z\n"
	_, err := ReadWasteCSV(strings.NewReader(input))
	assert.True(t, errors.Is(err, models.ErrUnknownCategory))
}

func TestReadWasteCSVRejectsBadCount(t *testing.T) {
	input := "area,shift,category,count,note,created_at\n" +
		"Dock 1,day,Waiting,lots,,2026-03-02T08:15:00Z\n"
	_, err := ReadWasteCSV(strings.NewReader(input))
	assert.Error(t, err)
}
