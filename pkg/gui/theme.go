package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// examineTheme is the dark theme used by the Examine window.
type examineTheme struct{}

// Accent and status colors.
var (
	colorAccent = color.RGBA{0x3d, 0x8b, 0xd4, 0xff} // steel blue
	colorError  = color.RGBA{0xf4, 0x43, 0x36, 0xff}
)

func (examineTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{0x15, 0x15, 0x17, 0xff}
	case theme.ColorNameButton:
		return color.RGBA{0x24, 0x24, 0x28, 0xff}
	case theme.ColorNameForeground:
		return color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
	case theme.ColorNameHover:
		return color.RGBA{0x32, 0x32, 0x36, 0xff}
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorAccent
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameSeparator:
		return color.RGBA{0x2e, 0x2e, 0x32, 0xff}
	case theme.ColorNameMenuBackground:
		return color.RGBA{0x20, 0x20, 0x24, 0xff}
	case theme.ColorNameOverlayBackground:
		return color.RGBA{0x15, 0x15, 0x17, 0xcc}
	case theme.ColorNameScrollBar:
		return color.RGBA{0x34, 0x34, 0x38, 0xff}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (examineTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (examineTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (examineTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
