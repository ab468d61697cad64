package parse

import (
	"fmt"
	"strings"

	"github.com/michael-gallo/icalscan/model"
)

// block identifies which BEGIN/END component is currently open.
type block string

const (
	blockCalendar block = "VCALENDAR"
	blockEvent    block = "VEVENT"
	blockTodo     block = "VTODO"
	blockJournal  block = "VJOURNAL"
	blockFreeBusy block = "VFREEBUSY"
	blockTimezone block = "VTIMEZONE"
	blockStandard block = "STANDARD"
	blockDaylight block = "DAYLIGHT"
)

// parseContext tracks the in-progress calendar and whichever component is
// currently open, mirroring the one-struct-per-parse-call state the
// teacher's own multi-component parser carries.
type parseContext struct {
	cal   *model.Calendar
	stack []block

	event    *model.Event
	todo     *model.Todo
	journal  *model.Journal
	freeBusy *model.FreeBusy
	timezone *model.TimeZone
}

func (ctx *parseContext) top() block {
	if len(ctx.stack) == 0 {
		return ""
	}
	return ctx.stack[len(ctx.stack)-1]
}

// Parse parses a complete RFC 5545 iCalendar document into a model.Calendar.
func Parse(input string) (*model.Calendar, error) {
	lines := unfold(input)

	ctx := &parseContext{cal: &model.Calendar{}}
	opened := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if beginValue, ok := strings.CutPrefix(line, "BEGIN:"); ok {
			if err := ctx.begin(block(strings.ToUpper(beginValue))); err != nil {
				return nil, err
			}
			opened = true
			continue
		}
		if endValue, ok := strings.CutPrefix(line, "END:"); ok {
			if err := ctx.end(block(strings.ToUpper(endValue))); err != nil {
				return nil, err
			}
			continue
		}

		if err := ctx.property(line); err != nil {
			return nil, err
		}
	}

	if !opened {
		return nil, ErrNoCalendarFound
	}
	if len(ctx.stack) != 0 {
		return nil, ErrInvalidCalendarFormatMissingEnd
	}
	return ctx.cal, nil
}

func (ctx *parseContext) begin(b block) error {
	if len(ctx.stack) == 0 && b != blockCalendar {
		return ErrInvalidCalendarFormatMissingBegin
	}
	switch b {
	case blockCalendar, blockStandard, blockDaylight:
	case blockEvent:
		ctx.event = &model.Event{}
	case blockTodo:
		ctx.todo = &model.Todo{}
	case blockJournal:
		ctx.journal = &model.Journal{}
	case blockFreeBusy:
		ctx.freeBusy = &model.FreeBusy{}
	case blockTimezone:
		ctx.timezone = &model.TimeZone{}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownComponent, b)
	}
	ctx.stack = append(ctx.stack, b)
	return nil
}

func (ctx *parseContext) end(b block) error {
	if ctx.top() != b {
		return fmt.Errorf("%w: got END:%s, expected END:%s", ErrMismatchedEnd, b, ctx.top())
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-1]

	switch b {
	case blockEvent:
		if err := validateEvent(ctx.event); err != nil {
			return err
		}
		ctx.cal.Events = append(ctx.cal.Events, *ctx.event)
		ctx.event = nil
	case blockTodo:
		if err := validateTodo(ctx.todo); err != nil {
			return err
		}
		ctx.cal.Todos = append(ctx.cal.Todos, *ctx.todo)
		ctx.todo = nil
	case blockJournal:
		if err := validateJournal(ctx.journal); err != nil {
			return err
		}
		ctx.cal.Journals = append(ctx.cal.Journals, *ctx.journal)
		ctx.journal = nil
	case blockFreeBusy:
		if err := validateFreeBusy(ctx.freeBusy); err != nil {
			return err
		}
		ctx.cal.FreeBusys = append(ctx.cal.FreeBusys, *ctx.freeBusy)
		ctx.freeBusy = nil
	case blockTimezone:
		ctx.cal.TimeZones = append(ctx.cal.TimeZones, *ctx.timezone)
		ctx.timezone = nil
	}
	return nil
}

func (ctx *parseContext) property(line string) error {
	name, params, value, err := splitLine(line)
	if err != nil {
		return err
	}

	switch ctx.top() {
	case blockCalendar:
		switch name {
		case "VERSION":
			ctx.cal.Version = value
		case "PRODID":
			ctx.cal.ProdID = value
		case "CALSCALE":
			ctx.cal.CalScale = value
		case "METHOD":
			ctx.cal.Method = value
		}
	case blockEvent:
		return parseEventProperty(name, params, value, ctx.event)
	case blockTodo:
		return parseTodoProperty(name, params, value, ctx.todo)
	case blockJournal:
		return parseJournalProperty(name, params, value, ctx.journal)
	case blockFreeBusy:
		return parseFreeBusyProperty(name, params, value, ctx.freeBusy)
	case blockTimezone, blockStandard, blockDaylight:
		parseTimezoneProperty(name, value, ctx.timezone)
	}
	return nil
}
