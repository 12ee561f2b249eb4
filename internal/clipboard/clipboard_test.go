package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeLookPath(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, i := range installed {
			if i == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	got, ok := find("linux", fakeLookPath("xsel", "xclip"))
	assert.True(t, ok)
	assert.Equal(t, "xclip", got.name, "xclip is preferred over xsel")

	got, ok = find("linux", fakeLookPath("wl-copy", "xclip"))
	assert.True(t, ok)
	assert.Equal(t, "wl-copy", got.name)

	got, ok = find("darwin", fakeLookPath("pbcopy"))
	assert.True(t, ok)
	assert.Equal(t, "pbcopy", got.name)

	got, ok = find("freebsd", fakeLookPath("xsel"))
	assert.True(t, ok, "unknown systems fall back to the X11 tools")
	assert.Equal(t, []string{"--clipboard", "--input"}, got.args)

	_, ok = find("linux", fakeLookPath())
	assert.False(t, ok)
}
