// Package export turns a team's month of tasks into a downloadable
// spreadsheet artifact: one (date, task) row per task, dates ascending,
// under a two-column header.
package export
