// Package intern provides a process-wide, append-only string interning
// pool. Interning trades a one-time map lookup for cheap-to-compare,
// cheap-to-hash integer identifiers, which the site graph uses for
// synthesized resource names (the $VCC/$GND site ports and the pip BELs and
// pins added alongside them) that never appear in the device string table.
//
// The pool never shrinks or reassigns an ID: once interned, a string keeps
// its ID for the lifetime of the process. Growth is the only mutation, so
// reads vastly outnumber writes; Pool splits its locking accordingly.
package intern
