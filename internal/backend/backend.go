package backend

import (
	"github.com/1broseidon/winrules/internal/layout"
	"github.com/1broseidon/winrules/internal/rules"
)

// WindowID is an opaque server-assigned window handle. It carries no
// payload; all metadata is fetched on demand.
type WindowID uint32

// Server is the capability surface the session controller drives. Attribute
// getters are best-effort: absence of data resolves to zero values, never an
// error, because windows can disappear between discovery and inspection.
// Action primitives are fire-and-forget; callers issue one Flush per full
// rule application.
type Server interface {
	// Name identifies the backend ("x11").
	Name() string

	// Notifications delivers one tick whenever pending server events
	// indicated that the managed client list may have changed. The channel
	// is closed when the connection is lost.
	Notifications() <-chan struct{}

	// Monitors returns the outputs discovered at connect time, in
	// enumeration order. Never empty.
	Monitors() []layout.Monitor

	// ClientList returns the currently managed top-level windows, empty on
	// any read failure.
	ClientList() []WindowID

	// Attributes extracts the five matchable properties of a window.
	Attributes(id WindowID) rules.Attributes

	// Geometry returns the window rectangle in root coordinates.
	Geometry(id WindowID) (layout.Rect, bool)

	Resize(id WindowID, width, height uint32)
	Move(id WindowID, x, y int)
	SetWorkspace(id WindowID, desktop uint32)
	Maximize(id WindowID)
	Fullscreen(id WindowID)
	Pin(id WindowID)
	Minimize(id WindowID)
	Shade(id WindowID)
	Above(id WindowID)
	Below(id WindowID)
	SetDecorated(id WindowID, decorated bool)
	SetOpacity(id WindowID, opacity float64)
	Activate(id WindowID)

	// Flush forces buffered requests onto the wire.
	Flush()

	// Close disconnects from the windowing server.
	Close()
}
