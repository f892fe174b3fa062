// Package flip implements the board model and turn state machine of a
// memory-matching tile game. The package is pure and deterministic: all
// randomness comes through an injected rand source, timing is counted in
// ticks, and rendering/input live with the caller.
package flip

import "github.com/sirupsen/logrus"

var Log = logrus.New()
