// Package ui shows the CHR ROM of a cartridge in a window.
package ui

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/shinypb/parsenes/ines"
)

const frameInterval = time.Second / 60

func title(bank, banks int) string {
	return fmt.Sprintf("parsenes - CHR bank %d/%d", bank+1, banks)
}

func mainLoop(window *glfw.Window, cart *ines.Cartridge, program uint32) error {
	banks := int(cart.CHRBanks)
	current := 0
	var last [keyCount]bool
	dirty := true
	for range time.Tick(frameInterval) {
		if dirty {
			img, err := bankImage(cart, current)
			if err != nil {
				return err
			}
			glog.V(1).Infof("showing CHR bank %d", current)
			window.SetTitle(title(current, banks))
			updateTexture(program, img)
			window.SwapBuffers()
			dirty = false
		}
		glfw.PollEvents()
		keys := getKeys(window)
		// Only act on the transition from released to pressed.
		next := nextBank(current, banks, keys[keyNext] && !last[keyNext], keys[keyPrev] && !last[keyPrev])
		if next != current {
			current = next
			dirty = true
		}
		last = keys
		if keys[keyQuit] || window.ShouldClose() {
			return nil
		}
	}
	return nil
}

// Start is the main entrypoint, it blocks until the window is closed.
func Start(cart *ines.Cartridge, width int, height int) error {
	if cart.CHRBanks == 0 {
		return fmt.Errorf("The cartridge has no CHR ROM, it uses CHR RAM")
	}
	err := glfw.Init()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(width, height, title(0, int(cart.CHRBanks)), nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	glog.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	program, err := newProgram()
	if err != nil {
		return err
	}
	gl.UseProgram(program)
	return mainLoop(window, cart, program)
}
