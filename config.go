package main

import (
	"image/color"
	"time"
)

// Rendering and input constants used throughout the front ends. Values that
// a user may want to change per run live in internal/config instead.
const (
	minimapCell        = 6
	minimapMargin      = 8
	minimapRayStride   = 12
	markerRadius       = 2
	sideShade          = 50
	minViewRange       = 1
	maxViewRange       = 64
	viewRangeStep      = 2
	pgoRecordDuration  = 15 * time.Second
	pgoProfilePath     = "default.pgo"
	autoWalkMinFrames  = 20
	autoWalkFrameRange = 50
	termKeyHold        = 150 * time.Millisecond
	maxFrameDelta      = 0.25
	sweepLogInterval   = 5 * time.Second
	defaultFOVDegrees  = 90.0
	minFOVDegrees      = 1.0
	maxFOVDegrees      = 180.0
)

var (
	wallColor       = color.RGBA{220, 210, 255, 255}
	backgroundColor = color.RGBA{0, 0, 0, 255}
	floorColor      = color.RGBA{100, 100, 100, 255}
	mapWallColor    = color.RGBA{30, 40, 80, 255}
	mapFloorColor   = color.RGBA{12, 12, 16, 255}
	mapFoodColor    = color.RGBA{240, 200, 60, 255}
	mapRayColor     = color.RGBA{255, 255, 255, 40}
	markerColor     = color.RGBA{255, 0, 0, 255}
	headingColor    = color.RGBA{0, 255, 200, 200}
)
