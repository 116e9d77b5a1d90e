package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNavigationBindings(r)
	registerStatusBindings(r)
	registerTextInputBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNavigationBindings sets up the menu keys used whenever text is not being edited
func registerNavigationBindings(r *Registry) {
	r.SetParent(ContextNavigation, ContextGlobal)

	r.Register(ContextNavigation, "q", ActionQuit)
	r.RegisterMultiple(ContextNavigation, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextNavigation, []string{"up", "k"}, ActionNavigateUp)
	r.Register(ContextNavigation, "enter", ActionConfirm)
	r.Register(ContextNavigation, "esc", ActionBack)
	r.Register(ContextNavigation, "?", ActionToggleHelp)
}

// registerStatusBindings sets up the Status screen extras
func registerStatusBindings(r *Registry) {
	r.SetParent(ContextStatus, ContextNavigation)

	r.Register(ContextStatus, "r", ActionRefresh)
	r.Register(ContextStatus, "c", ActionCopyToClipboard)
	r.Register(ContextStatus, "pgup", ActionPageUp)
	r.Register(ContextStatus, "pgdown", ActionPageDown)
	r.Register(ContextStatus, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextStatus, "ctrl+d", ActionHalfPageDown)
}

// registerTextInputBindings sets up commit message editing.
// Printable keys are not bound; they fall through to ActionTextInsertChar.
func registerTextInputBindings(r *Registry) {
	r.SetParent(ContextTextInput, ContextGlobal)

	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
	r.Register(ContextTextInput, "backspace", ActionTextBackspace)
}
