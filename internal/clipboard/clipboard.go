// Package clipboard copies verse reports to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found")

type tool struct {
	name string
	args []string
}

// tools lists the clipboard writers to try per OS, in order of preference.
var tools = map[string][]tool{
	"darwin":  {{name: "pbcopy"}},
	"linux":   {{name: "wl-copy"}, {name: "xclip", args: []string{"-selection", "clipboard"}}, {name: "xsel", args: []string{"--clipboard", "--input"}}},
	"windows": {{name: "cmd", args: []string{"/c", "clip"}}},
}

// find returns the first installed tool for goos.
func find(goos string, lookPath func(string) (string, error)) (tool, bool) {
	candidates, ok := tools[goos]
	if !ok {
		candidates = tools["linux"]
	}
	for _, t := range candidates {
		if _, err := lookPath(t.name); err == nil {
			return t, true
		}
	}
	return tool{}, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	t, ok := find(runtime.GOOS, exec.LookPath)
	if !ok {
		return ErrUnavailable
	}

	cmd := exec.Command(t.name, t.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, ok := find(runtime.GOOS, exec.LookPath)
	return ok
}
