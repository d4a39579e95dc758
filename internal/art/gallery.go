// SPDX-License-Identifier: MIT

package art

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI foreground colors used by the bundled pieces.
var (
	colorWhite        = lipgloss.Color("15")
	colorRed          = lipgloss.Color("1")
	colorLightRed     = lipgloss.Color("9")
	colorGreen        = lipgloss.Color("2")
	colorLightGreen   = lipgloss.Color("10")
	colorYellow       = lipgloss.Color("3")
	colorLightYellow  = lipgloss.Color("11")
	colorLightBlue    = lipgloss.Color("12")
	colorMagenta      = lipgloss.Color("5")
	colorLightMagenta = lipgloss.Color("13")
	colorLightCyan    = lipgloss.Color("14")
	colorDarkGray     = lipgloss.Color("8")
)

// The campfire contains backticks, so it lives in embedded files rather
// than raw string literals.
var (
	//go:embed assets/campfire.txt
	campfireText string

	//go:embed assets/campfire_colors.txt
	campfireKey string
)

// Campfire returns the animated-scene art shown on the ascii-art screen.
func Campfire() Cells {
	palette := Palette{
		'@': colorLightGreen,
		'&': colorGreen,
		'%': colorGreen,
		'8': colorGreen,
		'o': colorGreen,
		'G': colorGreen,
		'B': colorLightGreen,
		'W': colorWhite,
		'Y': colorYellow,
	}
	return New(
		strings.TrimRight(campfireText, "\n"),
		strings.TrimRight(campfireKey, "\n"),
		palette,
		colorDarkGray,
	)
}

// SettingsBanner returns the block-letter SETTINGS headline.
func SettingsBanner() Cells {
	text := Dedent(`
        ███████╗███████╗████████╗████████╗██╗███╗   ██╗ ██████╗ ███████╗
        ██╔════╝██╔════╝╚══██╔══╝╚══██╔══╝██║████╗  ██║██╔════╝ ██╔════╝
        ███████╗█████╗     ██║      ██║   ██║██╔██╗ ██║██║  ███╗███████╗
        ╚════██║██╔══╝     ██║      ██║   ██║██║╚██╗██║██║   ██║╚════██║
        ███████║███████╗   ██║      ██║   ██║██║ ╚████║╚██████╔╝███████║
        ╚══════╝╚══════╝   ╚═╝      ╚═╝   ╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚══════╝
    `)

	key := Dedent(`
        ███████R███████r████████Y████████G██C███B   ██B ██████p ███████P
        ██RRRRRR██rrrrrrYYY██YYYYGGG██GGGG██C████B  ██B██pppppp ██PPPPPP
        ███████R█████r     ██Y      ██G   ██C██B██B ██B██p  ███p███████P
        RRRRR██R██rrrr     ██Y      ██G   ██C██BB██B██B██p   ██pPPPPP██P
        ███████R███████r   ██Y      ██G   ██C██B B████Bp██████pp███████P
        RRRRRRRRrrrrrrrr   YYY      GGG   CCCBBB  BBBBB ppppppp PPPPPPPP
    `)

	palette := Palette{
		'█': colorWhite,
		'R': colorRed,
		'r': colorLightRed,
		'G': colorLightGreen,
		'B': colorLightBlue,
		'Y': colorLightYellow,
		'P': colorLightMagenta,
		'p': colorMagenta,
		'C': colorLightCyan,
		' ': lipgloss.NoColor{},
	}
	return New(text, key, palette, colorLightBlue)
}
