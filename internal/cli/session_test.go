package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fastset/internal/config"
	"github.com/rshade/fastset/internal/tui"
)

// newTestSession opens a session over the built-in options.
func newTestSession(t *testing.T, height int) *session {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvOptionsFile, "")

	s, err := newSession(config.New(), tui.NoColors(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(s.close)

	s.host.Resize(80, height)
	require.NoError(t, s.open(""))
	return s
}

func rowWith(t *testing.T, s *session, name string) string {
	t.Helper()
	for _, row := range s.host.Current().Rows() {
		if strings.Contains(row, name+" ") {
			return row
		}
	}
	t.Fatalf("no row for %s", name)
	return ""
}

func TestSession_Open(t *testing.T) {
	s := newTestSession(t, 20)

	p := s.host.Current()
	require.NotNil(t, p)
	assert.Equal(t, "Fast Set", p.Title())
	assert.Equal(t, "free", p.Type())
	assert.Equal(t, "option", p.LocalVar("type"))

	rows := p.Rows()
	require.Len(t, rows, 15)
	assert.True(t, strings.HasPrefix(rows[0], "> color.chat "), rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "  color.chat_highlight "), rows[1])
}

func TestSession_OpenWithFilter(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	s, err := newSession(config.New(), tui.NoColors(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(s.close)

	require.NoError(t, s.open("toggle"))

	assert.NotNil(t, s.host.Current(), "a filter that names an action still opens the pane")
	assert.Equal(t, "toggle", s.store.FilterText())
}

func TestSession_FilterInput(t *testing.T) {
	s := newTestSession(t, 20)

	s.host.Submit("t:boolean")

	rows := s.host.Current().Rows()
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0], "look.mouse")
	assert.Equal(t, 0, s.ctrl.Selected())
}

func TestSession_ToggleWithKey(t *testing.T) {
	s := newTestSession(t, 20)
	s.host.Submit("t:boolean")

	require.True(t, s.host.PressKey("down"))
	require.True(t, s.host.PressKey("alt+t"))

	o, ok := s.store.Lookup("startup.display_logo")
	require.True(t, ok)
	assert.Equal(t, "off", o.Value)
	assert.True(t, strings.HasPrefix(rowWith(t, s, "startup.display_logo"), ">"))
	assert.Empty(t, s.host.Status())
}

func TestSession_ActionErrorShowsStatus(t *testing.T) {
	s := newTestSession(t, 20)
	s.host.Submit("look.scroll_amount")

	require.True(t, s.host.PressKey("alt+t"))

	assert.Contains(t, s.host.Status(), "toggle")
}

func TestSession_SetPrefillsInput(t *testing.T) {
	s := newTestSession(t, 20)
	s.host.Submit("look.buffer_time_format")

	s.host.Submit("s")

	text, ok := s.host.TakeInput()
	require.True(t, ok)
	assert.Equal(t, "/set look.buffer_time_format %H:%M", text)

	s.host.Submit("/set look.buffer_time_format %H")
	o, _ := s.store.Lookup("look.buffer_time_format")
	assert.Equal(t, "%H", o.Value)
	assert.Contains(t, rowWith(t, s, "look.buffer_time_format"), "%H")
}

func TestSession_AppendPrefillsInput(t *testing.T) {
	s := newTestSession(t, 20)
	s.host.Submit("look.buffer_time_format")

	s.host.Submit("a")

	text, ok := s.host.TakeInput()
	require.True(t, ok)
	assert.Equal(t, "/append look.buffer_time_format ", text)

	s.host.Submit("/append look.buffer_time_format :%S")
	o, _ := s.store.Lookup("look.buffer_time_format")
	assert.Equal(t, "%H:%M:%S", o.Value)

	s.host.Submit("/append look.buffer_time_format")
	assert.Equal(t, errAppendUsage.Error(), s.host.Status())
}

func TestSession_SetErrors(t *testing.T) {
	s := newTestSession(t, 20)

	s.host.Submit("/set")
	assert.Equal(t, errSetUsage.Error(), s.host.Status())

	s.host.Submit("/set look.mouse maybe")
	assert.NotEmpty(t, s.host.Status())
}

func TestSession_PageScrollMovesSelection(t *testing.T) {
	s := newTestSession(t, 5)

	s.host.ScrollPage(1)

	assert.Equal(t, 4, s.host.Window().View().Start())
	assert.Equal(t, 5, s.ctrl.Selected())
}

func TestSession_MovingPastWindowScrolls(t *testing.T) {
	s := newTestSession(t, 5)

	for i := 0; i < 5; i++ {
		require.True(t, s.host.PressKey("down"))
	}

	assert.Equal(t, 5, s.ctrl.Selected())
	assert.Equal(t, 1, s.host.Window().View().Start())

	for i := 0; i < 3; i++ {
		require.True(t, s.host.PressKey("up"))
	}
	assert.Equal(t, 2, s.ctrl.Selected())
	assert.Equal(t, 1, s.host.Window().View().Start())

	require.True(t, s.host.PressKey("up"))
	require.True(t, s.host.PressKey("up"))
	assert.Equal(t, 0, s.ctrl.Selected())
	assert.Equal(t, 0, s.host.Window().View().Start())
}

func TestSession_QuitClosesPane(t *testing.T) {
	s := newTestSession(t, 20)

	s.host.Submit("q")

	assert.True(t, s.host.Done())
	assert.Equal(t, 0, s.store.Len())
}

func TestSession_Refresh(t *testing.T) {
	s := newTestSession(t, 20)
	s.host.Submit("look")
	s.host.PressKey("down")

	s.host.Submit("$")

	assert.Equal(t, 0, s.ctrl.Selected())
	assert.Len(t, s.host.Current().Rows(), 8)
}

func TestSession_ReloadFromFile(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`options:
  - {name: a.one, type: boolean, default: "on"}
`), 0o600))

	cfg := config.New()
	cfg.Options.File = path
	s, err := newSession(cfg, tui.NoColors(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(s.close)
	require.NoError(t, s.open(""))
	require.Len(t, s.host.Current().Rows(), 1)

	require.NoError(t, os.WriteFile(path, []byte(`options:
  - {name: a.one, type: boolean, default: "on"}
  - {name: a.two, type: integer, default: "2"}
`), 0o600))
	s.reload()
	assert.Len(t, s.host.Current().Rows(), 2)
	assert.Empty(t, s.host.Status())

	require.NoError(t, os.WriteFile(path, []byte("options: {{{"), 0o600))
	s.reload()
	assert.NotEmpty(t, s.host.Status())
	assert.Len(t, s.host.Current().Rows(), 2, "a failed reload keeps the previous options")
}

func TestNewSession_MissingOptionFile(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	cfg := config.New()
	cfg.Options.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newSession(cfg, tui.NoColors(), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading options")
}
