package renderer

import "errors"

// Render option errors
var (
	ErrInvalidDimensions     = errors.New("image dimensions must be positive")
	ErrInvalidSampleCount    = errors.New("samples per pixel must be positive")
	ErrInvalidDepth          = errors.New("maximum ray depth must be positive")
	ErrInvalidWorkerCount    = errors.New("worker count must not be negative")
	ErrInvalidTileSize       = errors.New("tile size must not be negative")
	ErrInvalidPassCount      = errors.New("pass count must be positive")
	ErrInvalidInitialSamples = errors.New("initial pass samples must be positive")
)

// Camera configuration errors
var (
	ErrInvalidAspect        = errors.New("aspect ratio must be positive")
	ErrInvalidFov           = errors.New("vertical field of view must be between 0 and 180 degrees")
	ErrInvalidAperture      = errors.New("aperture must not be negative")
	ErrInvalidFocusDistance = errors.New("focus distance must be positive")
	ErrInvalidShutter       = errors.New("shutter interval end must not precede its start")
	ErrDegenerateView       = errors.New("look-from and look-at must not coincide")
	ErrDegenerateUp         = errors.New("up vector must not be parallel to the view direction")
)
