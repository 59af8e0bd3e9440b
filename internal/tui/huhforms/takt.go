package huhforms

import "charm.land/huh/v2"

// CreateTaktForm creates a huh form for one takt calculation.
// The form uses pointers to update values in place; numeric fields stay
// strings here and are parsed on submit.
func CreateTaktForm(
	name *string,
	available *string,
	demand *string,
	cycle *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Scenario Name").
			Placeholder("e.g. short shift (optional)").
			Value(name),
		huh.NewInput().
			Key("available").
			Title("Available Minutes").
			Placeholder("480").
			Value(available),
		huh.NewInput().
			Key("demand").
			Title("Customer Demand (units)").
			Placeholder("120").
			Value(demand),
		huh.NewInput().
			Key("cycle").
			Title("Observed Cycle Minutes").
			Placeholder("leave empty if not measured").
			Value(cycle),
		huh.NewConfirm().
			Key("confirm").
			Title("Record this scenario?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
