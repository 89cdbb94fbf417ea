package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/winrules/internal/layout"
)

// queryMonitors enumerates connected, active RandR outputs in server order.
// When no usable output is found it synthesizes a single monitor from the
// root window's pixel dimensions, so the result is never empty.
func (c *Client) queryMonitors() ([]layout.Monitor, error) {
	if err := randr.Init(c.xu.Conn()); err != nil {
		return c.fallbackMonitor(), nil
	}

	resources, err := randr.GetScreenResourcesCurrent(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}

	var monitors []layout.Monitor
	for _, output := range resources.Outputs {
		outputInfo, err := randr.GetOutputInfo(c.xu.Conn(), output, 0).Reply()
		if err != nil {
			continue
		}
		if outputInfo.Crtc == 0 || outputInfo.Connection != randr.ConnectionConnected {
			continue
		}
		crtcInfo, err := randr.GetCrtcInfo(c.xu.Conn(), outputInfo.Crtc, 0).Reply()
		if err != nil {
			continue
		}
		monitors = append(monitors, layout.Monitor{
			Name:   string(outputInfo.Name),
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	if len(monitors) == 0 {
		return c.fallbackMonitor(), nil
	}
	return monitors, nil
}

func (c *Client) fallbackMonitor() []layout.Monitor {
	screen := c.xu.Screen()
	return []layout.Monitor{{
		Name:   "default",
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}}
}
