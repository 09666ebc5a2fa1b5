package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconChecked   = "" // nf-fa-check_square
	IconUnchecked = "" // nf-fa-square_o
	IconCursor    = "›"
	IconFilter    = "" // nf-fa-filter
)
