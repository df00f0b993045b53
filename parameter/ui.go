package parameter

// Terminal Layout
const (
	// TopMargin reserves one line for the mode banner
	TopMargin = 1

	// BottomMargin reserves one line for the status bar
	BottomMargin = 1

	// TerminalScaleX is host coordinate units per terminal column
	TerminalScaleX = 10

	// TerminalScaleY is host coordinate units per terminal row, rows are roughly twice as tall as columns
	TerminalScaleY = 20
)

// Status Bar
const (
	// Mode indicator text
	ModeTextLock   = " LOCK "
	ModeTextUnlock = " UNLOCK "
	ModeTextModify = " MODIFY "
	ModeTextNone   = " ---- "

	// AudioStr marks audio cues as enabled
	AudioStr = "♫ "
)
