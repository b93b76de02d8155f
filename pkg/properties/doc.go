// Package properties updates a single key in a line-oriented SDC
// properties file.
//
// The file format is the one used by sdc.properties: one key=value pair per
// line, a leading '#' disables the line, and there is no quoting, escaping
// or section structure. Apply locates the key (active or disabled), rewrites
// that line as an active key=value line and leaves every other byte of the
// file untouched.
//
// Apply is idempotent: when the rebuilt content equals the file on disk
// nothing is written and no backup is taken. In dry-run mode the result is
// computed but neither the file nor its backups are touched.
//
// Backups are rotated by name, never overwritten:
//
//	sdc.properties.bak
//	sdc.properties.1.bak
//	sdc.properties.2.bak
package properties
