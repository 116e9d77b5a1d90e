package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal     Context = "global"     // Available everywhere
	ContextNavigation Context = "navigation" // Menu and screen navigation (not editing)
	ContextStatus     Context = "status"     // Status screen, inherits navigation
	ContextTextInput  Context = "text_input" // Commit message editing
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move menu cursor up
	ActionNavigateDown Action = "navigate_down" // Move menu cursor down
	ActionConfirm      Action = "confirm"       // Run the selected menu item
	ActionBack         Action = "back"          // Return to the menu
	ActionToggleHelp   Action = "toggle_help"   // Show or hide the key list

	// Status screen actions
	ActionRefresh         Action = "refresh"           // Re-run git status
	ActionCopyToClipboard Action = "copy_to_clipboard" // Copy status output
	ActionPageUp          Action = "page_up"           // Scroll one page up
	ActionPageDown        Action = "page_down"         // Scroll one page down
	ActionHalfPageUp      Action = "half_page_up"      // Scroll half a page up
	ActionHalfPageDown    Action = "half_page_down"    // Scroll half a page down

	// Text input actions
	ActionTextInsertChar Action = "text_insert_char" // Insert character
	ActionTextBackspace  Action = "text_backspace"   // Delete last character
	ActionTextSubmit     Action = "text_submit"      // Commit and push
	ActionTextCancel     Action = "text_cancel"      // Stop editing
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:            {ActionQuit, "quit", "Global"},
	ActionQuitForce:       {ActionQuitForce, "force quit", "Global"},
	ActionNavigateUp:      {ActionNavigateUp, "up", "Navigation"},
	ActionNavigateDown:    {ActionNavigateDown, "down", "Navigation"},
	ActionConfirm:         {ActionConfirm, "select", "Navigation"},
	ActionBack:            {ActionBack, "back", "Navigation"},
	ActionToggleHelp:      {ActionToggleHelp, "help", "Navigation"},
	ActionRefresh:         {ActionRefresh, "refresh", "Status"},
	ActionCopyToClipboard: {ActionCopyToClipboard, "copy", "Status"},
	ActionPageUp:          {ActionPageUp, "page up", "Status"},
	ActionPageDown:        {ActionPageDown, "page down", "Status"},
	ActionHalfPageUp:      {ActionHalfPageUp, "half page up", "Status"},
	ActionHalfPageDown:    {ActionHalfPageDown, "half page down", "Status"},
	ActionTextInsertChar:  {ActionTextInsertChar, "type", "Text Input"},
	ActionTextBackspace:   {ActionTextBackspace, "delete", "Text Input"},
	ActionTextSubmit:      {ActionTextSubmit, "commit & push", "Text Input"},
	ActionTextCancel:      {ActionTextCancel, "stop editing", "Text Input"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one of the defined actions
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}
