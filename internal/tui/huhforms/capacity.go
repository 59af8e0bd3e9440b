package huhforms

import "charm.land/huh/v2"

// CreateCapacityForm creates a huh form for one day's staffing plan.
// QA and shuttle paces are fixed; only the install pace is asked for.
func CreateCapacityForm(
	goal *string,
	hours *string,
	installers *string,
	installMinutes *string,
	qaStaff *string,
	shuttleDrivers *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("goal").
			Title("Daily Goal (units)").
			Placeholder("200").
			Value(goal),
		huh.NewInput().
			Key("hours").
			Title("Working Hours").
			Placeholder("16 (two shifts)").
			Value(hours),
		huh.NewInput().
			Key("installers").
			Title("Installers").
			Placeholder("24").
			Value(installers),
		huh.NewInput().
			Key("install_minutes").
			Title("Install Minutes per Unit").
			Placeholder("65").
			Value(installMinutes),
		huh.NewInput().
			Key("qa").
			Title("QA Staff").
			Placeholder("6").
			Value(qaStaff),
		huh.NewInput().
			Key("drivers").
			Title("Shuttle Drivers").
			Placeholder("3").
			Value(shuttleDrivers),
		huh.NewConfirm().
			Key("confirm").
			Title("Compute the plan?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
