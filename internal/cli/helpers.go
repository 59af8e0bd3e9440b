package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// CategoryNames returns the fixed waste categories as a comma-separated
// list, for error suggestions
func CategoryNames() string {
	categories := models.AllWasteCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// ParseDueDate parses a YYYY-MM-DD due date. Empty input means no due date.
func ParseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	due, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date '%s' (expected YYYY-MM-DD)", value)
	}
	return &due, nil
}

// ReadStdinIfDash returns the value unchanged unless it is "-", in which
// case stdin is read to end. Lets notes and descriptions be piped in.
func ReadStdinIfDash(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
