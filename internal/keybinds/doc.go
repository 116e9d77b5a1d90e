/*
Package keybinds maps key presses to dashboard actions.

# Contexts

Bindings live in contexts that fall back to a parent when a key is not
bound locally:

	text_input ──► global
	status ──► navigation ──► global

  - global: ctrl+c force quit, available everywhere
  - navigation: q, j/k (and arrows), enter, esc, ? (key list), used whenever
    the commit message is not being edited
  - status: refresh, copy and scrolling on the Status screen
  - text_input: enter submits, esc stops editing, backspace deletes.
    Printable keys are not bound; the TUI inserts them as text.

The bindings are fixed. NewDefaultRegistry builds the whole table.

# Validation

Validator checks a registry for unknown actions, empty keys, reserved key
rebinding, shadowed parent bindings, and contexts missing an action they
need (a screen that cannot be left, for example). The TUI validates the
default registry at startup.

# Example Usage

	registry := keybinds.NewDefaultRegistry()
	if err := keybinds.NewValidator().ValidateRegistry(registry).Err(); err != nil {
		return err
	}

	if action, ok := registry.Match(keybinds.ContextStatus, "j"); ok {
		// action == keybinds.ActionNavigateDown, inherited from navigation
	}
*/
package keybinds
