//go:build linux

package backend

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winrules/internal/layout"
	"github.com/1broseidon/winrules/internal/rules"
	"github.com/1broseidon/winrules/internal/x11"
)

// X11Backend exposes the X11 protocol client through the Server capability
// interface. New backends (other display protocols) implement the same
// contract and get selected in Connect.
type X11Backend struct {
	client *x11.Client
}

var _ Server = (*X11Backend)(nil)

// Connect tries each available backend in order and returns the first that
// establishes a session. Failure to connect is fatal for the caller: the
// daemon cannot run without a windowing server.
func Connect() (Server, error) {
	client, err := x11.Connect()
	if err != nil {
		return nil, err
	}
	return &X11Backend{client: client}, nil
}

func (b *X11Backend) Name() string { return b.client.Name() }

func (b *X11Backend) Notifications() <-chan struct{} { return b.client.Notifications() }

func (b *X11Backend) Monitors() []layout.Monitor { return b.client.Monitors() }

func (b *X11Backend) ClientList() []WindowID {
	clients := b.client.ClientList()
	ids := make([]WindowID, len(clients))
	for i, win := range clients {
		ids[i] = WindowID(win)
	}
	return ids
}

// Attributes classifies a window: the five matchable properties, queried
// live so a window is always evaluated against its current state.
func (b *X11Backend) Attributes(id WindowID) rules.Attributes {
	win := xproto.Window(id)
	return rules.Attributes{
		Class:   b.client.Class(win),
		Title:   b.client.Title(win),
		Role:    b.client.Role(win),
		Process: b.client.ProcessName(win),
		Type:    b.client.WindowType(win),
	}
}

func (b *X11Backend) Geometry(id WindowID) (layout.Rect, bool) {
	return b.client.Geometry(xproto.Window(id))
}

func (b *X11Backend) Resize(id WindowID, width, height uint32) {
	b.client.Resize(xproto.Window(id), width, height)
}

func (b *X11Backend) Move(id WindowID, x, y int) {
	b.client.Move(xproto.Window(id), x, y)
}

func (b *X11Backend) SetWorkspace(id WindowID, desktop uint32) {
	b.client.SetWorkspace(xproto.Window(id), desktop)
}

func (b *X11Backend) Maximize(id WindowID)   { b.client.Maximize(xproto.Window(id)) }
func (b *X11Backend) Fullscreen(id WindowID) { b.client.Fullscreen(xproto.Window(id)) }
func (b *X11Backend) Pin(id WindowID)        { b.client.Pin(xproto.Window(id)) }
func (b *X11Backend) Minimize(id WindowID)   { b.client.Minimize(xproto.Window(id)) }
func (b *X11Backend) Shade(id WindowID)      { b.client.Shade(xproto.Window(id)) }
func (b *X11Backend) Above(id WindowID)      { b.client.Above(xproto.Window(id)) }
func (b *X11Backend) Below(id WindowID)      { b.client.Below(xproto.Window(id)) }

func (b *X11Backend) SetDecorated(id WindowID, decorated bool) {
	b.client.SetDecorated(xproto.Window(id), decorated)
}

func (b *X11Backend) SetOpacity(id WindowID, opacity float64) {
	b.client.SetOpacity(xproto.Window(id), opacity)
}

func (b *X11Backend) Activate(id WindowID) { b.client.Activate(xproto.Window(id)) }

func (b *X11Backend) Flush() { b.client.Flush() }

func (b *X11Backend) Close() { b.client.Close() }
