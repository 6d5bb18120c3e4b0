package common

// Logical render size. The window may scale it; simulation space is
// independent of both.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
