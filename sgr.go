package ansicsi

// Code is a Select Graphic Rendition (SGR) parameter. The values are
// written verbatim as the single parameter of a `CSI Pm m` sequence.
//
// This is the fixed table from
// https://en.wikipedia.org/wiki/ANSI_escape_code#SGR_(Select_Graphic_Rendition)_parameters
// minus the extended color selectors (38/48), which take sub-parameters
// and are exposed through Foreground and Background instead.
type Code int

const (
	Normal        Code = 0 // reset all attributes
	Bold          Code = 1
	Faint         Code = 2
	Italic        Code = 3
	Underline     Code = 4
	SlowBlink     Code = 5
	RapidBlink    Code = 6
	Inverse       Code = 7
	Invisible     Code = 8
	Strikethrough Code = 9

	PrimaryFont Code = 10
	AltFont1    Code = 11
	AltFont2    Code = 12
	AltFont3    Code = 13
	AltFont4    Code = 14
	AltFont5    Code = 15
	AltFont6    Code = 16
	AltFont7    Code = 17
	AltFont8    Code = 18
	AltFont9    Code = 19

	DoubleUnderline  Code = 21
	BoldFaintOff     Code = 22
	ItalicOff        Code = 23
	UnderlineOff     Code = 24
	Steady           Code = 25 // not blinking
	Positive         Code = 27 // not inverse
	Visible          Code = 28
	StrikethroughOff Code = 29

	FgBlack   Code = 30
	FgRed     Code = 31
	FgGreen   Code = 32
	FgYellow  Code = 33
	FgBlue    Code = 34
	FgMagenta Code = 35
	FgCyan    Code = 36
	FgWhite   Code = 37
	FgDefault Code = 39

	BgBlack   Code = 40
	BgRed     Code = 41
	BgGreen   Code = 42
	BgYellow  Code = 43
	BgBlue    Code = 44
	BgMagenta Code = 45
	BgCyan    Code = 46
	BgWhite   Code = 47
	BgDefault Code = 49

	Frame            Code = 51
	Encircle         Code = 52
	Overline         Code = 53
	FrameEncircleOff Code = 54
	OverlineOff      Code = 55

	RightSideLine       Code = 60
	RightSideDoubleLine Code = 61
	LeftSideLine        Code = 62
	LeftSideDoubleLine  Code = 63
	DoubleStrikethrough Code = 64
	LineOff             Code = 65

	FgBrightBlack   Code = 90
	FgBrightRed     Code = 91
	FgBrightGreen   Code = 92
	FgBrightYellow  Code = 93
	FgBrightBlue    Code = 94
	FgBrightMagenta Code = 95
	FgBrightCyan    Code = 96
	FgBrightWhite   Code = 97

	BgBrightBlack   Code = 100
	BgBrightRed     Code = 101
	BgBrightGreen   Code = 102
	BgBrightYellow  Code = 103
	BgBrightBlue    Code = 104
	BgBrightMagenta Code = 105
	BgBrightCyan    Code = 106
	BgBrightWhite   Code = 107
)

// SGR selects a graphic rendition (SGR). The code is written verbatim;
// it stays in effect until changed or reset by Normal.
func (w *Writer) SGR(c Code) error {
	return w.csi("%dm", int(c))
}
