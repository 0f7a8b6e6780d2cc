package program

import "errors"

var (
	// ErrInvalidWeek reports a week number outside 1..26 (or a week missing
	// from an imported program).
	ErrInvalidWeek = errors.New("invalid week")

	// ErrInvalidDay reports a day name that is not one of
	// dimanche/mardi/vendredi/maison.
	ErrInvalidDay = errors.New("invalid day")

	// ErrImportFormat reports imported data that is not valid JSON or does
	// not have the expected shape. Existing state is left untouched.
	ErrImportFormat = errors.New("invalid import format")
)
