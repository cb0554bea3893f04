// Package clipboard copies conversion results to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("clipboard: no clipboard tool found")

// candidates lists clipboard tools per GOOS, most preferred first.
var candidates = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"linux":   {{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
	"windows": {{"clip"}},
}

var lookPath = exec.LookPath

// command returns the first installed clipboard tool for goos.
func command(goos string) ([]string, bool) {
	tools, ok := candidates[goos]
	if !ok {
		tools = candidates["linux"]
	}
	for _, tool := range tools {
		if _, err := lookPath(tool[0]); err == nil {
			return tool, true
		}
	}
	return nil, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	tool, ok := command(runtime.GOOS)
	if !ok {
		return ErrUnavailable
	}

	cmd := exec.Command(tool[0], tool[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %w: %s", tool[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Available reports whether Write can succeed.
func Available() bool {
	_, ok := command(runtime.GOOS)
	return ok
}
