// Package tetris is a falling-block puzzle simulation.
//
// A Game owns a Board of locked cells, a Randomizer dealing pieces and the falling ActivePiece. The
// host calls Update once per frame with the elapsed seconds and an Input snapshot; everything else
// (movement, rotation, gravity, locking, line clears, scoring, leveling) happens inside that call.
// Renderers read the accessors or take a Snapshot between ticks.
//
// Illegal moves, out of bounds reads and a blocked spawn are ordinary outcomes, not errors: moves
// are discarded, reads come back empty, and a blocked spawn (a top-out) clears the board and
// resets score, level and lines in place.
package tetris
