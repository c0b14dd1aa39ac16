package styles

// Status glyphs used by the printer and the form.
var (
	IconCheck = "✔"
	IconCross = "✘"
	IconInfo  = "•"
	IconArrow = "›"
)
