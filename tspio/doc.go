// Package tspio reads point-set instances and writes tours in the plain text
// format used by the linkern command.
//
// Input: one or more instances, each a line holding the city count k followed
// by k lines "id x y" (whitespace separated; coordinates may be integers or
// reals). Blank lines are ignored.
//
//	4
//	1 0 0
//	2 0 10
//	3 10 10
//	4 10 0
//
// Output: the tour length on the first line, then one city ID per line in
// tour order. The closing edge back to the first city is implicit.
//
//	40
//	1
//	2
//	3
//	4
//
// Malformed input is reported as instance.ErrInvalidInput wrapped with the
// offending line number.
package tspio
