// Package diag implements the engine's structured diagnostic pipeline:
// PrintRecord, Theme, Exception, and the console sink.
package diag

// Color is one of 17 named ANSI colors. The fixed colour table maps each
// to the standard 30-37/40-47/90-97/100-107 ranges: the 8 normal
// colours, their 8 bright variants, plus Default.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var foregroundCode = map[Color]int{
	ColorDefault: 39, ColorBlack: 30, ColorRed: 31, ColorGreen: 32,
	ColorYellow: 33, ColorBlue: 34, ColorMagenta: 35, ColorCyan: 36, ColorWhite: 37,
	ColorBrightBlack: 90, ColorBrightRed: 91, ColorBrightGreen: 92,
	ColorBrightYellow: 93, ColorBrightBlue: 94, ColorBrightMagenta: 95,
	ColorBrightCyan: 96, ColorBrightWhite: 97,
}

var backgroundCode = map[Color]int{
	ColorDefault: 49, ColorBlack: 40, ColorRed: 41, ColorGreen: 42,
	ColorYellow: 43, ColorBlue: 44, ColorMagenta: 45, ColorCyan: 46, ColorWhite: 47,
	ColorBrightBlack: 100, ColorBrightRed: 101, ColorBrightGreen: 102,
	ColorBrightYellow: 103, ColorBrightBlue: 104, ColorBrightMagenta: 105,
	ColorBrightCyan: 106, ColorBrightWhite: 107,
}

// ColorPair is a foreground/background pair.
type ColorPair struct {
	Foreground Color
	Background Color
}

// Theme identifies a PrintRecordSection's colour scheme, one of a fixed
// enumeration.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeVerbose
	ThemeInfo
	ThemeWarning
	ThemePerformanceWarning
	ThemeError
	ThemeCriticalError
	ThemeDebug
)

var themeColors = map[Theme]ColorPair{
	ThemeDefault: {ColorDefault, ColorDefault},
	ThemeVerbose: {ColorBrightBlack, ColorDefault},
	ThemeInfo: {ColorWhite, ColorDefault},
	ThemeWarning: {ColorYellow, ColorDefault},
	ThemePerformanceWarning: {ColorBrightYellow, ColorDefault},
	ThemeError: {ColorRed, ColorDefault},
	ThemeCriticalError: {ColorBrightWhite, ColorRed},
	ThemeDebug: {ColorMagenta, ColorDefault},
}

// Colors returns the theme's foreground/background pair.
func (t Theme) Colors() ColorPair { return themeColors[t] }

// ansiSequence renders the CSI colour-set sequence for a theme, matching
// "ESC [ fg ; bg m".
func ansiSequence(t Theme) string {
	c := t.Colors()
	return csi(foregroundCode[c.Foreground]) + ";" + csiDigits(backgroundCode[c.Background]) + "m"
}

func csi(n int) string { return "\x1b[" + itoa(n) }

func csiDigits(n int) string { return itoa(n) }

const ansiReset = "\x1b[0m"

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
