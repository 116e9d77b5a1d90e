/*
Package tui implements the gitdash terminal dashboard.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: screen, menu cursor, commit message buffer, cached status output
  - Update: processes key presses and git results, returns commands
  - View: renders the current state to the terminal

# Key Components

  - model.go: Core state, screens, menu items and message types
  - keys.go: Keyboard input handling and keybind routing
  - actions.go: Cursor movement, confirm/submit, git commands
  - render.go: Panels and footer
  - init.go: Construction and the program loop

# Screens

	List ──enter on Push──► Input (editing) ──enter──► List
	  │                        esc: stop editing, stay on Input
	  └──enter on Status──► Status ──esc──► List

Git never runs on the event loop. Status is fetched on entry to the Status
screen and on refresh, and the result is cached; View only reads the cache.
The publish sequence (stage, commit, push) runs as a command and reports
back with publishDoneMsg.
*/
package tui
