package x11

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/winrules/internal/layout"
)

// windowTypeNames maps EWMH window-type atoms to the matcher vocabulary.
var windowTypeNames = map[string]string{
	"_NET_WM_WINDOW_TYPE_NORMAL":  "normal",
	"_NET_WM_WINDOW_TYPE_DIALOG":  "dialog",
	"_NET_WM_WINDOW_TYPE_DOCK":    "dock",
	"_NET_WM_WINDOW_TYPE_TOOLBAR": "toolbar",
	"_NET_WM_WINDOW_TYPE_MENU":    "menu",
	"_NET_WM_WINDOW_TYPE_UTILITY": "utility",
	"_NET_WM_WINDOW_TYPE_SPLASH":  "splash",
	"_NET_WM_WINDOW_TYPE_DESKTOP": "desktop",
}

// ClientList returns the managed top-level windows from _NET_CLIENT_LIST.
// Empty on any read failure, never fatal.
func (c *Client) ClientList() []xproto.Window {
	clients, err := ewmh.ClientListGet(c.xu)
	if err != nil {
		return nil
	}
	return clients
}

// Class returns the class field of WM_CLASS, empty when unavailable.
func (c *Client) Class(win xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.xu, win)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

// Title prefers the UTF-8 _NET_WM_NAME, falling back to the legacy WM_NAME.
func (c *Client) Title(win xproto.Window) string {
	title, err := ewmh.WmNameGet(c.xu, win)
	if err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	title, err = icccm.WmNameGet(c.xu, win)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(title)
}

// Role returns WM_WINDOW_ROLE, empty when unavailable.
func (c *Client) Role(win xproto.Window) string {
	role, err := xprop.PropValStr(xprop.GetProperty(c.xu, win, "WM_WINDOW_ROLE"))
	if err != nil {
		return ""
	}
	return role
}

// ProcessName resolves _NET_WM_PID and reads the process command name from
// the operating system. Empty when either step fails.
func (c *Client) ProcessName(win xproto.Window) string {
	pid, err := ewmh.WmPidGet(c.xu, win)
	if err != nil || pid == 0 {
		return ""
	}
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(comm))
}

// WindowType maps the first _NET_WM_WINDOW_TYPE atom onto the fixed matcher
// vocabulary. Absent resolves to "normal", unrecognized to "unknown".
func (c *Client) WindowType(win xproto.Window) string {
	types, err := ewmh.WmWindowTypeGet(c.xu, win)
	if err != nil || len(types) == 0 {
		return "normal"
	}
	return mapWindowType(types[0])
}

func mapWindowType(atomName string) string {
	if name, ok := windowTypeNames[atomName]; ok {
		return name
	}
	return "unknown"
}

// Geometry returns the window rectangle translated into root coordinates.
func (c *Client) Geometry(win xproto.Window) (layout.Rect, bool) {
	geom, err := xproto.GetGeometry(c.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return layout.Rect{}, false
	}
	translate, err := xproto.TranslateCoordinates(c.xu.Conn(), win, c.root, 0, 0).Reply()
	if err != nil {
		return layout.Rect{}, false
	}
	return layout.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, true
}
