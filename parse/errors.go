package parse

import "errors"

// Calendar-level errors.
var (
	ErrNoCalendarFound                   = errors.New("empty calendar sent")
	ErrInvalidCalendarFormatMissingBegin = errors.New("invalid calendar format: must start with BEGIN:VCALENDAR")
	ErrInvalidCalendarFormatMissingEnd   = errors.New("invalid calendar format: must end with END:VCALENDAR")
	ErrUnknownComponent                 = errors.New("unknown component block")
	ErrMismatchedEnd                    = errors.New("END does not match the currently open block")
)

// General parsing errors.
var (
	ErrInvalidPropertyLine = errors.New("invalid property line in iCal data")
	ErrInvalidTimeValue    = errors.New("invalid date or date-time value")
)

// Required-property errors, one per component kind.
var (
	ErrMissingEventUID   = errors.New("VEVENT must have a UID property")
	ErrMissingTodoUID    = errors.New("VTODO must have a UID property")
	ErrMissingJournalUID = errors.New("VJOURNAL must have a UID property")
	ErrMissingFreeBusyUID = errors.New("VFREEBUSY must have a UID property")
)
