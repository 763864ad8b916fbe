package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDateKey(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid date", date: "2024-03-01", wantErr: false},
		{name: "empty", date: "", wantErr: true},
		{name: "wrong format", date: "03/01/2024", wantErr: true},
		{name: "month prefix only", date: "2024-03", wantErr: true},
		{name: "impossible day", date: "2024-02-31", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDateKey(tc.date)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskBookAppendAndTasks(t *testing.T) {
	book := NewTaskBook()

	book.Append("eng", "2024-03-01", "write report")
	book.Append("eng", "2024-03-01", "review PR")

	assert.Equal(t, []string{"write report", "review PR"}, book.Tasks("eng", "2024-03-01"))
	assert.Empty(t, book.Tasks("eng", "2024-03-02"))
	assert.Empty(t, book.Tasks("sales", "2024-03-01"))
}

func TestTaskBookTasksReturnsCopy(t *testing.T) {
	book := NewTaskBook()
	book.Append("eng", "2024-03-01", "write report")

	got := book.Tasks("eng", "2024-03-01")
	got[0] = "mutated"

	assert.Equal(t, []string{"write report"}, book.Tasks("eng", "2024-03-01"))
}

func TestTaskBookRemove(t *testing.T) {
	book := NewTaskBook()
	book.Append("eng", "2024-03-01", "write report")
	book.Append("eng", "2024-03-01", "review PR")

	require.NoError(t, book.Remove("eng", "2024-03-01", 0))
	assert.Equal(t, []string{"review PR"}, book.Tasks("eng", "2024-03-01"))

	// Removing the last task prunes the date and then the team.
	require.NoError(t, book.Remove("eng", "2024-03-01", 0))
	_, teamExists := book["eng"]
	assert.False(t, teamExists, "empty team must be pruned from the book")
}

func TestTaskBookRemoveErrors(t *testing.T) {
	book := NewTaskBook()
	book.Append("eng", "2024-03-01", "write report")

	tests := []struct {
		name    string
		team    string
		date    string
		index   int
		wantErr error
	}{
		{name: "unknown team", team: "sales", date: "2024-03-01", index: 0, wantErr: ErrNotFound},
		{name: "unknown date", team: "eng", date: "2024-03-02", index: 0, wantErr: ErrNotFound},
		{name: "negative index", team: "eng", date: "2024-03-01", index: -1, wantErr: ErrIndexOutOfRange},
		{name: "index past end", team: "eng", date: "2024-03-01", index: 1, wantErr: ErrIndexOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := book.Remove(tc.team, tc.date, tc.index)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Failed removals leave the book untouched.
	assert.Equal(t, []string{"write report"}, book.Tasks("eng", "2024-03-01"))
}

func TestTaskBookMonthRows(t *testing.T) {
	book := NewTaskBook()
	book.Append("eng", "2024-03-05", "later task")
	book.Append("eng", "2024-03-01", "first task")
	book.Append("eng", "2024-03-01", "second task")
	book.Append("eng", "2024-04-01", "next month")
	book.Append("sales", "2024-03-02", "other team")

	rows := book.MonthRows("eng", "2024-03")
	require.Len(t, rows, 3)
	assert.Equal(t, TaskRow{Date: "2024-03-01", Task: "first task"}, rows[0])
	assert.Equal(t, TaskRow{Date: "2024-03-01", Task: "second task"}, rows[1])
	assert.Equal(t, TaskRow{Date: "2024-03-05", Task: "later task"}, rows[2])

	assert.Nil(t, book.MonthRows("eng", "2023-01"))
	assert.Nil(t, book.MonthRows("nobody", "2024-03"))
}
