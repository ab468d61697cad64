package parse

import (
	"strconv"

	"github.com/michael-gallo/icalscan/model"
)

func parseTodoProperty(name string, params map[string]string, value string, todo *model.Todo) error {
	switch name {
	case "UID":
		todo.UID = value
	case "DTSTAMP":
		if t, err := icalStamp(value); err == nil {
			todo.DTStamp = t
		}
	case "DTSTART":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		todo.DtStart = v
	case "DUE":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		todo.DueAt = v
	case "DURATION":
		d, err := parseDuration(value)
		if err != nil {
			return err
		}
		todo.Dur = d
	case "SUMMARY":
		todo.Summary = value
	case "DESCRIPTION":
		todo.Description = append(todo.Description, value)
	case "LOCATION":
		todo.Location = value
	case "STATUS":
		todo.Status = model.TodoStatus(value)
	case "PRIORITY":
		if n, err := strconv.Atoi(value); err == nil {
			todo.Priority = n
		}
	case "SEQUENCE":
		if n, err := strconv.Atoi(value); err == nil {
			todo.Sequence = n
		}
	case "CATEGORIES":
		todo.Categories = append(todo.Categories, csv(value)...)
	case "COMMENT":
		todo.Comment = append(todo.Comment, value)
	case "ORGANIZER":
		todo.Organizer = parseOrganizer(value, params)
	case "RRULE":
		todo.Rrule = append(todo.Rrule, value)
	case "RDATE":
		values, err := parseValueList(value, params)
		if err != nil {
			return err
		}
		todo.Rdate = append(todo.Rdate, values...)
	case "EXDATE":
		values, err := parseValueList(value, params)
		if err != nil {
			return err
		}
		todo.Exdate = append(todo.Exdate, values...)
	case "RECURRENCE-ID":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		todo.RecurID = &v
	default:
		setExtensionProperty(&todo.XProp, &todo.IANAProp, name, value)
	}
	return nil
}

func validateTodo(todo *model.Todo) error {
	if todo.UID == "" {
		return ErrMissingTodoUID
	}
	return nil
}
