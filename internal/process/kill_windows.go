//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates the Chrome process tree rooted at pid.
func KillProcessGroup(pid int) {
	// launcher.Kill still runs afterwards, so the error is not needed.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
