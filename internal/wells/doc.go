// Package wells describes the one-dimensional piecewise-constant
// potentials solved by qwell.
//
// A [Structure] is a chain of interior wells separated by barriers and
// flanked by two exterior walls:
//
//	 Vext[0]  |well 0| Vint[0] |well 1| ... |well n-1|  Vext[1]
//	[0,h]     [h ........................... 2h]       [2h,3h]
//
// The structure occupies [h, 2h] where h is the total width of all wells
// and barriers, and the enclosing infinite well has width L = 3h. A
// [Layout] lists the constant-potential regions in absolute coordinates.
//
// # Indexing
//
// Barriers[i] and Vint[i] describe the gap between Wells[i] and
// Wells[i+1], both 0-based. Basis indices elsewhere in qwell are 1-based.
//
// # Barrier placement
//
// By default ([Shifted]) the barrier offsets are accumulated from the
// second well onward, so barrier i starts at
// h + Σ_{k=1..i+1} Wells[k] + Σ_{k<i} Barriers[k]. With equal well widths
// this is the physical position; for unequal wells [Adjacent] places each
// barrier directly after the well it follows.
package wells
