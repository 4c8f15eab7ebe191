package statusbar

// View names shown in the status bar badge.
const (
	ViewBoard = "BOARD"
	ViewDaily = "DAILY"
	ViewEdit  = "EDIT"
)

// GetHints returns the keybinding hints for the given view
func GetHints(view string) string {
	switch view {
	case ViewBoard:
		return "h/j/k/l: navigate  [/]: move  a/e/d: task  t: tags  s: subtasks  /: search  ,/.: sort  x: clear  i: invite  S/T: templates  ctrl+z: undo  tab: daily  q: quit"
	case ViewDaily:
		return "r: refresh  tab: board  q: quit"
	case ViewEdit:
		return "tab: next field  ctrl+s: save  esc: cancel"
	default:
		return ""
	}
}
