// Package interval implements a verified interval-arithmetic kernel for
// IEEE-754 double precision.
//
// Every operation returns an Interval that rigorously encloses the set of
// real results obtained by applying the operation pointwise to every
// value in its operand intervals. Undefinedness (division by an interval
// containing zero, square root of a negative lower bound, tangent near an
// odd multiple of pi/2, ...) is never an error: it is encoded in-band as
// a NaN-tagged interval, exposed through PossiblyUndefined.
//
// # Directed rounding
//
// The reference implementation this package is grounded on (see
// DESIGN.md) toggles the hardware rounding-control register so that the
// processor itself computes the lower bound rounded towards -Inf and the
// upper bound rounded towards +Inf. Go has no portable access to that
// register, so this package instead computes every result in ordinary
// round-to-nearest arithmetic and widens the result outward by one ULP
// with math.Nextafter (see rounding.go). The soundness contract — the
// lower bound never overstates and the upper bound never understates the
// true result — is preserved; the enclosure is at most one ULP wider
// than a hardware-rounded implementation would produce.
//
// # Three-valued logic
//
// Package interval also defines Bool, the three-valued ("definitely" /
// "possibly") boolean that every comparison and every Constraint check
// returns instead of a plain bool.
package interval
