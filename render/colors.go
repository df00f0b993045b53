package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/patternlock/geometry"
)

// RGB color definitions for cell states and chrome
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbCellIdle   = tcell.NewRGBColor(120, 124, 150) // Muted gray-blue ring
	RgbCellActive = tcell.NewRGBColor(100, 150, 255) // Blue while tracking
	RgbCellDone   = tcell.NewRGBColor(0, 200, 0)     // Green on success
	RgbCellFailed = tcell.NewRGBColor(255, 80, 80)   // Red on failure

	RgbGuide = tcell.NewRGBColor(180, 180, 180) // Live segment to the pointer

	RgbStatusText = tcell.NewRGBColor(0, 0, 0) // Dark text on status backgrounds

	// Mode banner backgrounds
	RgbModeLockBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbModeUnlockBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeModifyBg = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbModeNoneBg   = tcell.NewRGBColor(80, 80, 80)    // Dark gray

	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)     // Bright red when muted
	RgbAudioUnmuted = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbLockedOutBg  = tcell.NewRGBColor(200, 50, 50)   // Red attempts counter at zero
)

// statusColor returns the ring and line color for a cell status
func statusColor(s geometry.Status) tcell.Color {
	switch s {
	case geometry.StatusFingerOn:
		return RgbCellActive
	case geometry.StatusFingerUpDone:
		return RgbCellDone
	case geometry.StatusFingerUpFailed:
		return RgbCellFailed
	default:
		return RgbCellIdle
	}
}
