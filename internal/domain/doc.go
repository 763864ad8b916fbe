// Package domain contains the core business entities, value objects, and
// domain logic of the application: the task book (team -> date -> ordered
// task texts), user accounts, and the sentinel errors shared by the
// service and delivery layers.
package domain
