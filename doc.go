// Package groebner provides the symbolic-algebra core of an F4 Gröbner basis
// engine over finite prime fields.
//
// The core is split into:
//   - field: modular arithmetic over a prime p
//   - term: the interned term monoid, term operations and term orderings
//   - poly: the polynomial data model, parser and printer
//   - f4: the simplify table used by symbolic preprocessing
//
// The F4 driver, the linear-algebra reducer and all I/O of input ideals are
// external collaborators and not part of this module.
package groebner

import (
	"github.com/blang/semver/v4"
)

// Version of the engine. Embedded in serialized generator lists.
var Version = semver.MustParse("0.1.0")
