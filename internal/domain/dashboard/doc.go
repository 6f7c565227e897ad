// Package dashboard computes read-only statistics snapshots from already
// loaded projects, milestones, ledgers and kanban cards. Every function is
// pure: the caller passes the collections and the current day, nothing is
// cached and nothing is persisted.
package dashboard
