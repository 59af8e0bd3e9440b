package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/aretedriver/gemba/internal/models"
)

// scoreOptions builds the 1-5 select options used for impact and effort
func scoreOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, models.MaxScore)
	for i := models.MinScore; i <= models.MaxScore; i++ {
		label := fmt.Sprintf("%d", i)
		switch i {
		case models.MinScore:
			label += " (low)"
		case models.MaxScore:
			label += " (high)"
		}
		options = append(options, huh.NewOption(label, fmt.Sprintf("%d", i)))
	}
	return options
}

// CreateKaizenForm creates a huh form for adding or editing a backlog item
func CreateKaizenForm(
	description *string,
	impact *string,
	effort *string,
	owner *string,
	due *string,
	confirm *bool,
	isEdit bool,
) *huh.Form {
	confirmTitle := "Add this item to the backlog?"
	if isEdit {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What should improve, and how?").
			CharLimit(models.MaxDescriptionLength).
			Lines(3).
			Value(description),
		huh.NewSelect[string]().
			Key("impact").
			Title("Impact").
			Options(scoreOptions()...).
			Value(impact),
		huh.NewSelect[string]().
			Key("effort").
			Title("Effort").
			Options(scoreOptions()...).
			Value(effort),
		huh.NewInput().
			Key("owner").
			Title("Owner").
			Placeholder("who drives it (optional)").
			Value(owner),
		huh.NewInput().
			Key("due").
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(due),
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
