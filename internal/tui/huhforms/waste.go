package huhforms

import (
	"charm.land/huh/v2"

	"github.com/aretedriver/gemba/internal/models"
)

// CreateWasteForm creates a huh form for logging one gemba observation.
// The category select covers the fixed seven-waste set; free text never
// enters the aggregation keys.
func CreateWasteForm(
	area *string,
	shift *string,
	category *string,
	count *string,
	note *string,
	confirm *bool,
) *huh.Form {
	categories := models.AllWasteCategories()
	options := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(string(c), string(c))
	}

	fields := []huh.Field{
		huh.NewSelect[string]().
			Key("category").
			Title("Waste Category").
			Options(options...).
			Value(category),
		huh.NewInput().
			Key("area").
			Title("Area").
			Placeholder("e.g. assembly (optional)").
			Value(area),
		huh.NewInput().
			Key("shift").
			Title("Shift").
			Placeholder("e.g. day (optional)").
			Value(shift),
		huh.NewInput().
			Key("count").
			Title("Count").
			Placeholder("1").
			Value(count),
		huh.NewText().
			Key("note").
			Title("Note").
			Placeholder("What did you see on the floor?").
			CharLimit(models.MaxNoteLength).
			Lines(3).
			Value(note),
		huh.NewConfirm().
			Key("confirm").
			Title("Log this observation?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
