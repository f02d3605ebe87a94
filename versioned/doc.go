// Package versioned implements a versioned façade: a wrapper over
// store.Store that prepends a leading version axis (an int64 domain)
// to every user-supplied region, and resolves an implicit
// VersionSelection (Current, Unapproved, or a specific version) into
// that leading axis's interval before delegating to the underlying
// engine.
//
// Unapproved changes are parked starting at a reserved version,
// unapprovedStartVersion (the maximum representable int64), so that
// they are invisible under the Current selection until Approve moves
// them to start at current_version.
package versioned
