package nav

// ToggleMenu flips the mobile menu flag. Pressing twice restores the original
// state; navigating away remounts the header with the menu closed.
func ToggleMenu(open bool) bool { return !open }

// MenuState parses the htmx fragment query value into the boolean flag.
// Anything but "1" reads as closed, so malformed input degrades to the
// initial state.
func MenuState(raw string) bool { return raw == "1" }
