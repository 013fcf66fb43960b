// Package estimate converts a planned walk into a wall-clock duration.
//
// The model has two knobs: a walking speed in coordinate units per
// second and a fixed service time spent at every visited stop. The
// defaults correspond to covering 360.55 units in 120 seconds of
// walking plus 90 seconds per stop; a YAML file can override either.
package estimate
