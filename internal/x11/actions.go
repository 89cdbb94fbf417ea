package x11

import (
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"
)

// EWMH _NET_WM_STATE client-message actions.
const (
	stateAdd = 1

	// WM_CHANGE_STATE IconicState per ICCCM.
	iconicState = 3

	// Client-message source indication: normal application.
	sourceApplication = 1

	// _NET_WM_DESKTOP sentinel for "all desktops".
	allDesktops = 0xFFFFFFFF
)

// Resize issues a ConfigureWindow for width and height only.
func (c *Client) Resize(win xproto.Window, width, height uint32) {
	xproto.ConfigureWindow(c.xu.Conn(), win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{width, height})
}

// Move issues a ConfigureWindow for x and y only. Negative coordinates are
// carried in two's complement per the protocol.
func (c *Client) Move(win xproto.Window, x, y int) {
	xproto.ConfigureWindow(c.xu.Conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))})
}

// SetWorkspace asks the window manager to move the window to a desktop.
func (c *Client) SetWorkspace(win xproto.Window, desktop uint32) {
	c.sendClientMessage(win, "_NET_WM_DESKTOP", [5]uint32{desktop, sourceApplication, 0, 0, 0})
}

// Maximize adds both maximized state flags in a single request.
func (c *Client) Maximize(win xproto.Window) {
	c.addState(win, "_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ")
}

func (c *Client) Fullscreen(win xproto.Window) {
	c.addState(win, "_NET_WM_STATE_FULLSCREEN", "")
}

// Pin makes the window visible on all desktops: the all-desktops sentinel
// plus the sticky state flag.
func (c *Client) Pin(win xproto.Window) {
	c.sendClientMessage(win, "_NET_WM_DESKTOP", [5]uint32{allDesktops, sourceApplication, 0, 0, 0})
	c.addState(win, "_NET_WM_STATE_STICKY", "")
}

// Minimize requests iconification via WM_CHANGE_STATE.
func (c *Client) Minimize(win xproto.Window) {
	c.sendClientMessage(win, "WM_CHANGE_STATE", [5]uint32{iconicState, 0, 0, 0, 0})
}

func (c *Client) Shade(win xproto.Window) {
	c.addState(win, "_NET_WM_STATE_SHADED", "")
}

func (c *Client) Above(win xproto.Window) {
	c.addState(win, "_NET_WM_STATE_ABOVE", "")
}

func (c *Client) Below(win xproto.Window) {
	c.addState(win, "_NET_WM_STATE_BELOW", "")
}

// SetDecorated writes the Motif hints property. The window manager, not the
// server, interprets it, so this is a plain property write:
// [flags=MWM_HINTS_DECORATIONS, functions, decorations, input_mode, status].
func (c *Client) SetDecorated(win xproto.Window, decorated bool) {
	decorations := uint(0)
	if decorated {
		decorations = 1
	}
	xprop.ChangeProp32(c.xu, win, "_MOTIF_WM_HINTS", "_MOTIF_WM_HINTS",
		2, 0, decorations, 0, 0)
}

// SetOpacity writes _NET_WM_WINDOW_OPACITY scaled from [0,1].
func (c *Client) SetOpacity(win xproto.Window, opacity float64) {
	xprop.ChangeProp32(c.xu, win, "_NET_WM_WINDOW_OPACITY", "CARDINAL",
		uint(opacityCardinal(opacity)))
}

// Activate requests focus and raise via _NET_ACTIVE_WINDOW.
func (c *Client) Activate(win xproto.Window) {
	c.sendClientMessage(win, "_NET_ACTIVE_WINDOW", [5]uint32{sourceApplication, 0, 0, 0, 0})
}

// addState broadcasts a _NET_WM_STATE add request for one or two flags.
// State changes are managed by the window manager and cannot be set by
// direct property writes.
func (c *Client) addState(win xproto.Window, first, second string) {
	data := [5]uint32{stateAdd, uint32(c.atom(first)), 0, sourceApplication, 0}
	if second != "" {
		data[2] = uint32(c.atom(second))
	}
	c.sendClientMessage(win, "_NET_WM_STATE", data)
}

// sendClientMessage broadcasts a 32-bit client message to the root window
// with the substructure masks window managers listen on. Fire-and-forget:
// no reply is awaited.
func (c *Client) sendClientMessage(win xproto.Window, typ string, data [5]uint32) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   c.atom(typ),
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}
	xproto.SendEvent(
		c.xu.Conn(),
		false,
		c.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	)
}

// opacityCardinal converts an opacity fraction into the 32-bit cardinal the
// compositor convention expects. Out-of-range input is clamped first.
func opacityCardinal(opacity float64) uint32 {
	clamped := math.Min(math.Max(opacity, 0), 1)
	return uint32(math.Round(clamped * float64(math.MaxUint32)))
}
