// Package business provides business objects whose properties are
// registered per type and guarded by role based authorization rules.
//
// A BusinessBase publishes its registered properties to the tabular adapter
// through PropertyNames and ReadProperty, so a property the current
// principal may not read turns into an error cell instead of a value.
package business
