package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	Foreground   tcell.Color
	HeaderUser   tcell.Color
	HeaderPath   tcell.Color
	DirectoryFg  tcell.Color
	FileFg       tcell.Color
	EmptyFg      tcell.Color
	MetaFg       tcell.Color
	SelectionFg  tcell.Color
	DirSelectBg  tcell.Color
	FileSelectBg tcell.Color
	MarkedFg     tcell.Color
	MarkedBg     tcell.Color
	MatchFg      tcell.Color
	EditFg       tcell.Color
	HintKeyFg    tcell.Color
	HintFg       tcell.Color
	FooterFg     tcell.Color
	InfoFg       tcell.Color
	SuccessFg    tcell.Color
	WarnFg       tcell.Color
	ErrorFg      tcell.Color
	PreviewFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:   tcell.ColorDefault,
		Foreground:   tcell.ColorDefault,
		HeaderUser:   tcell.ColorGreen,
		HeaderPath:   tcell.Color33,
		DirectoryFg:  tcell.Color33,
		FileFg:       tcell.ColorDefault,
		EmptyFg:      tcell.ColorLightSlateGray,
		MetaFg:       tcell.ColorLightSlateGray,
		SelectionFg:  tcell.ColorBlack,
		DirSelectBg:  tcell.Color33,
		FileSelectBg: tcell.ColorWhite,
		MarkedFg:     tcell.ColorYellow,
		MarkedBg:     tcell.ColorYellow,
		MatchFg:      tcell.Color208, // orange prefix of search hits
		EditFg:       tcell.ColorLightGreen,
		HintKeyFg:    tcell.ColorLightCyan,
		HintFg:       tcell.ColorDefault,
		FooterFg:     tcell.ColorLightSlateGray,
		InfoFg:       tcell.ColorLightCyan,
		SuccessFg:    tcell.ColorGreen,
		WarnFg:       tcell.ColorYellow,
		ErrorFg:      tcell.ColorRed,
		PreviewFg:    tcell.ColorDefault,
	}
}
