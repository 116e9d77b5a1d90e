package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Viewport Padding and Borders
	ViewportBorderWidth       = 2 // Width consumed by borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Content Area Offsets
	FooterHeight        = 1 // Status line below the panel
	ContentOffsetStatus = 4 // m.height - 4: panel offset + loading/error line

	// Footer
	MaxMessageLength = 100 // Footer messages are truncated past this many runes
	FooterSeparator  = " • "
)

// MessageTimeout clears success messages from the footer
const MessageTimeout = 5 * time.Second
