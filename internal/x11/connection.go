package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/winrules/internal/layout"
)

// atomNames is the wire vocabulary this client interoperates with. Every
// atom is interned once at connect and cached for the session.
var atomNames = []string{
	"WM_NAME",
	"WM_CLASS",
	"WM_WINDOW_ROLE",
	"WM_CHANGE_STATE",
	"UTF8_STRING",
	"_NET_CLIENT_LIST",
	"_NET_WM_NAME",
	"_NET_WM_PID",
	"_NET_WM_DESKTOP",
	"_NET_WM_STATE",
	"_NET_WM_STATE_MAXIMIZED_VERT",
	"_NET_WM_STATE_MAXIMIZED_HORZ",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_BELOW",
	"_NET_WM_STATE_STICKY",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_SHADED",
	"_NET_WM_STATE_HIDDEN",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_NORMAL",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_MENU",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_OPACITY",
	"_NET_ACTIVE_WINDOW",
	"_MOTIF_WM_HINTS",
}

// Client owns the X11 connection, the interned atom vocabulary, and the
// monitor layout discovered at connect time.
type Client struct {
	xu       *xgbutil.XUtil
	root     xproto.Window
	atoms    map[string]xproto.Atom
	monitors []layout.Monitor
	notify   chan struct{}
}

// Connect establishes the X11 session, subscribes the root window to
// property-change notifications, interns the atom vocabulary, queries the
// monitor layout and starts the event pump.
func Connect() (*Client, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect: %w", err)
	}

	c := &Client{
		xu:     xu,
		root:   xu.RootWin(),
		atoms:  make(map[string]xproto.Atom, len(atomNames)),
		notify: make(chan struct{}, 1),
	}

	if err := xwindow.New(xu, c.root).Listen(xproto.EventMaskPropertyChange); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("listen on root window: %w", err)
	}

	for _, name := range atomNames {
		atom, err := xprop.Atm(xu, name)
		if err != nil {
			xu.Conn().Close()
			return nil, fmt.Errorf("intern atom %s: %w", name, err)
		}
		c.atoms[name] = atom
	}

	c.monitors, err = c.queryMonitors()
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}

	go c.pump()

	return c, nil
}

// Name identifies this backend.
func (c *Client) Name() string { return "x11" }

// Monitors returns the outputs discovered at connect time.
func (c *Client) Monitors() []layout.Monitor { return c.monitors }

// Notifications delivers a tick per batch of client-list changes. Closed on
// connection loss.
func (c *Client) Notifications() <-chan struct{} { return c.notify }

// Flush waits for the server to process all buffered requests.
func (c *Client) Flush() { c.xu.Sync() }

// Close disconnects from the X server.
func (c *Client) Close() { c.xu.Conn().Close() }

// pump reads X events and coalesces client-list property changes into the
// notification channel. Runs until the connection drops.
func (c *Client) pump() {
	defer close(c.notify)
	clientList := c.atoms["_NET_CLIENT_LIST"]
	for {
		ev, xerr := c.xu.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return // connection closed
		}
		if xerr != nil {
			continue
		}
		prop, ok := ev.(xproto.PropertyNotifyEvent)
		if !ok || prop.Window != c.root || prop.Atom != clientList {
			continue
		}
		select {
		case c.notify <- struct{}{}:
		default: // a tick is already pending
		}
	}
}

func (c *Client) atom(name string) xproto.Atom {
	return c.atoms[name]
}
