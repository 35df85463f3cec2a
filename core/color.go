package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// RGBGray is the neutral fallback for values without a palette entry
var RGBGray = RGB{128, 128, 128}
