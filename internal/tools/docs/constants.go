package docs

// Common display constants used across documentation.
const (
	// Display symbols.
	CheckMark = "✅"
	CrossMark = "❌"
	EmDash    = "—"

	// Common values.
	Yes  = "Yes"
	No   = "No"
	NA   = "N/A"
	Free = "Free"
)
