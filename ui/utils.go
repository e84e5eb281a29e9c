package ui

import "github.com/go-gl/glfw/v3.3/glfw"

const (
	keyNext = iota
	keyPrev
	keyQuit
	keyCount
)

// getKeys gets the state of keyboard, Right/L for the next bank, Left/H for the previous one, Escape/Q to quit.
func getKeys(window *glfw.Window) [keyCount]bool {
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	var keys [keyCount]bool
	keys[keyNext] = pressed(glfw.KeyRight, glfw.KeyL)
	keys[keyPrev] = pressed(glfw.KeyLeft, glfw.KeyH)
	keys[keyQuit] = pressed(glfw.KeyEscape, glfw.KeyQ)
	return keys
}

// nextBank applies a single key press to the current bank index, wrapping around.
func nextBank(current, banks int, next, prev bool) int {
	if banks == 0 {
		return 0
	}
	switch {
	case next && !prev:
		return (current + 1) % banks
	case prev && !next:
		return (current + banks - 1) % banks
	}
	return current
}
