package domain

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the canonical calendar-day key format. String order of
// well-formed keys equals chronological order.
const DateLayout = "2006-01-02"

// MonthLayout is the prefix format accepted by month exports.
const MonthLayout = "2006-01"

// TaskBook is the full task state: team -> date key -> ordered task texts.
// The zero value is not usable; construct with NewTaskBook or let the store
// return one. A team key exists only while it holds at least one date with
// at least one task.
type TaskBook map[string]map[string][]string

// NewTaskBook returns an empty task book.
func NewTaskBook() TaskBook {
	return make(TaskBook)
}

// ValidateDateKey checks that s is a well-formed YYYY-MM-DD calendar date.
func ValidateDateKey(s string) error {
	if s == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrValidation, s)
	}
	return nil
}

// ValidateMonthPrefix checks that s is a well-formed YYYY-MM month prefix.
func ValidateMonthPrefix(s string) error {
	if s == "" {
		return fmt.Errorf("%w: month is required", ErrValidation)
	}
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return fmt.Errorf("%w: month %q is not in YYYY-MM form", ErrValidation, s)
	}
	return nil
}

// Append adds text to the end of the task list for (team, date), creating
// the intermediate maps as needed.
func (b TaskBook) Append(team, date, text string) {
	teamTasks, ok := b[team]
	if !ok {
		teamTasks = make(map[string][]string)
		b[team] = teamTasks
	}
	teamTasks[date] = append(teamTasks[date], text)
}

// Tasks returns the ordered task list for (team, date). Unknown teams or
// dates yield an empty slice, never an error. The returned slice is a copy.
func (b TaskBook) Tasks(team, date string) []string {
	teamTasks, ok := b[team]
	if !ok {
		return []string{}
	}
	list, ok := teamTasks[date]
	if !ok {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Remove deletes the task at index from (team, date), shifting later tasks
// down. Emptied date lists are pruned, and a team whose last date list is
// pruned is removed from the book entirely.
func (b TaskBook) Remove(team, date string, index int) error {
	teamTasks, ok := b[team]
	if !ok {
		return fmt.Errorf("%w: no tasks for team %q", ErrNotFound, team)
	}
	list, ok := teamTasks[date]
	if !ok {
		return fmt.Errorf("%w: no tasks for %s on %s", ErrNotFound, team, date)
	}
	if index < 0 || index >= len(list) {
		return fmt.Errorf("%w: index %d, list has %d tasks", ErrIndexOutOfRange, index, len(list))
	}

	list = append(list[:index], list[index+1:]...)
	if len(list) == 0 {
		delete(teamTasks, date)
	} else {
		teamTasks[date] = list
	}
	if len(teamTasks) == 0 {
		delete(b, team)
	}
	return nil
}

// TaskRow is one (date, task) pair produced by month queries.
type TaskRow struct {
	Date string
	Task string
}

// MonthRows returns every (date, task) pair for team whose date starts with
// the YYYY-MM prefix, ordered by date ascending with ties in original list
// order.
func (b TaskBook) MonthRows(team, monthPrefix string) []TaskRow {
	teamTasks := b[team]
	if len(teamTasks) == 0 {
		return nil
	}

	dates := make([]string, 0, len(teamTasks))
	for date := range teamTasks {
		if len(date) >= len(monthPrefix) && date[:len(monthPrefix)] == monthPrefix {
			dates = append(dates, date)
		}
	}
	// Date keys sort chronologically as strings.
	sort.Strings(dates)

	var rows []TaskRow
	for _, date := range dates {
		for _, task := range teamTasks[date] {
			rows = append(rows, TaskRow{Date: date, Task: task})
		}
	}
	return rows
}
