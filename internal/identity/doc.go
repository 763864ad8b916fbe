// Package identity exposes user accounts to the calendar core through a
// read-only provider interface. The core never owns account storage; it
// only authenticates callers and enumerates accounts for digest routing.
package identity
