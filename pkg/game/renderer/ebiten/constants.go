// Package ebiten previews generated levels in a window.
package ebiten

import "image/color"

// Color palette for the preview
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorSky        = color.RGBA{15, 15, 26, 255}    // Darker for open air
	colorGround     = color.RGBA{110, 80, 50, 255}   // Earth
	colorTop        = color.RGBA{70, 160, 70, 255}   // Grass on exposed ground
	colorPlayer     = color.RGBA{0, 255, 0, 255}     // Bright green
	colorHazard     = color.RGBA{255, 80, 80, 255}   // Bright red
	colorEnemy      = color.RGBA{100, 150, 255, 255} // Bright blue
	colorAnchor     = color.RGBA{255, 255, 255, 255} // Exact placement point
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction     = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorPanel      = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Tile size constraints
const (
	minTileSize     = 4
	maxTileSize     = 64
	tileSizeStep    = 4
	defaultTileSize = 16
)

// Layout
const (
	statusBarHeight = 40 // pixels above the map for the status lines
	lineHeight      = 16
	textPadding     = 6
	anchorSize      = 4 // side of the square marking a placement's exact position
	scrollStep      = 8 // columns per scroll action
)
