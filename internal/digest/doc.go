// Package digest composes and delivers the daily per-account task summary.
// A cron trigger fires once per day at a configured wall-clock time in a
// fixed zone; each firing walks the known accounts and mails every account
// with an address its team's task list for the day. Delivery failures are
// isolated per account.
package digest
