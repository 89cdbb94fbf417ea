package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/1broseidon/winrules/internal/backend"
	"github.com/1broseidon/winrules/internal/layout"
	"github.com/1broseidon/winrules/internal/rules"
)

// ReloadFunc loads and compiles a fresh rule set. An error rejects the
// reload; the engine keeps the previous rules.
type ReloadFunc func() ([]*rules.CompiledRule, error)

// Engine is the session controller: it owns the active rule set and the
// per-session window bookkeeping, and dispatches every new window through
// classify, match, resolve, apply. All state is mutated from the single
// goroutine running Run.
type Engine struct {
	srv    backend.Server
	logger *slog.Logger
	rules  []*rules.CompiledRule
	dryRun bool
	reload ReloadFunc

	// known is the last observed client-list snapshot; handled collects
	// every window already dispatched, append-only for the process
	// lifetime; pendingStartup holds the windows that existed when the
	// daemon started, drained exactly once.
	known          map[backend.WindowID]struct{}
	handled        map[backend.WindowID]struct{}
	pendingStartup []backend.WindowID
}

// New snapshots the current client list so windows that predate the daemon
// are dispatched exactly once on the first processing pass.
func New(srv backend.Server, logger *slog.Logger, ruleset []*rules.CompiledRule, dryRun bool, reload ReloadFunc) *Engine {
	clients := srv.ClientList()
	known := make(map[backend.WindowID]struct{}, len(clients))
	for _, id := range clients {
		known[id] = struct{}{}
	}
	return &Engine{
		srv:            srv,
		logger:         logger,
		rules:          ruleset,
		dryRun:         dryRun,
		reload:         reload,
		known:          known,
		handled:        make(map[backend.WindowID]struct{}),
		pendingStartup: clients,
	}
}

// Run processes the startup backlog, then blocks multiplexing server
// notifications, reload requests and cancellation until ctx is done or the
// server connection is lost. A nil reloads channel disables hot reload.
func (e *Engine) Run(ctx context.Context, reloads <-chan string) error {
	e.logger.Info("daemon started",
		"backend", e.srv.Name(),
		"rules", len(e.rules),
		"dry_run", e.dryRun,
		"existing_windows", len(e.pendingStartup))

	e.drainStartup()

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("shutting down")
			return nil
		case _, ok := <-e.srv.Notifications():
			if !ok {
				return errors.New("connection to windowing server lost")
			}
			e.syncClients()
		case reason := <-reloads:
			e.reloadRules(reason)
		}
	}
}

// drainStartup dispatches every window that existed before the daemon
// started. Runs once; later passes see an empty backlog.
func (e *Engine) drainStartup() {
	for _, id := range e.pendingStartup {
		e.dispatch(id)
		e.handled[id] = struct{}{}
	}
	e.pendingStartup = nil
}

// syncClients diffs the current client list against the last snapshot and
// dispatches genuinely new windows. handled is never pruned, so a handle
// reappearing within one process lifetime is not re-evaluated.
func (e *Engine) syncClients() {
	current := e.srv.ClientList()
	for _, id := range current {
		if _, ok := e.known[id]; ok {
			continue
		}
		if _, ok := e.handled[id]; ok {
			continue
		}
		e.dispatch(id)
		e.handled[id] = struct{}{}
	}

	known := make(map[backend.WindowID]struct{}, len(current))
	for _, id := range current {
		known[id] = struct{}{}
	}
	e.known = known
}

// dispatch classifies a window and applies every matching rule in rule-set
// order, each independently and fully.
func (e *Engine) dispatch(id backend.WindowID) {
	attrs := e.srv.Attributes(id)
	for i, rule := range e.rules {
		if !rule.Matches(attrs) {
			continue
		}
		e.logger.Info("rule matched",
			"rule", i,
			"window", uint32(id),
			"class", attrs.Class,
			"title", attrs.Title,
			"process", attrs.Process)
		e.applyRule(id, rule)
	}
}

// applyRule resolves and applies one rule's actions in a fixed order: size
// before position (centering depends on the resolved size), then workspace
// and the state toggles. Dry-run mode runs the identical resolution but
// logs instead of writing.
func (e *Engine) applyRule(id backend.WindowID, rule *rules.CompiledRule) {
	mon := e.targetMonitor(id, rule)

	var width, height uint32
	haveSize := false
	if rule.Size != nil {
		width, height = rules.ResolveSize(rule.Size, mon)
		haveSize = true
		e.perform(id, func() { e.srv.Resize(id, width, height) },
			"resize", "width", width, "height", height)
	}

	if rule.Position != nil {
		winW, winH := int(width), int(height)
		if !haveSize {
			if geom, ok := e.srv.Geometry(id); ok {
				winW, winH = geom.Width, geom.Height
			}
		}
		x, y := rules.ResolvePosition(rule.Position, mon, winW, winH)
		e.perform(id, func() { e.srv.Move(id, x, y) },
			"move", "x", x, "y", y, "monitor", mon.Name)
	}

	if rule.Workspace != nil {
		desktop := *rule.Workspace
		e.perform(id, func() { e.srv.SetWorkspace(id, desktop) },
			"workspace", "desktop", desktop)
	}
	if isSet(rule.Maximize) {
		e.perform(id, func() { e.srv.Maximize(id) }, "maximize")
	}
	if isSet(rule.Fullscreen) {
		e.perform(id, func() { e.srv.Fullscreen(id) }, "fullscreen")
	}
	if isSet(rule.Pin) {
		e.perform(id, func() { e.srv.Pin(id) }, "pin")
	}
	if isSet(rule.Minimize) {
		e.perform(id, func() { e.srv.Minimize(id) }, "minimize")
	}
	if isSet(rule.Shade) {
		e.perform(id, func() { e.srv.Shade(id) }, "shade")
	}
	if isSet(rule.Above) {
		e.perform(id, func() { e.srv.Above(id) }, "above")
	}
	if isSet(rule.Below) {
		e.perform(id, func() { e.srv.Below(id) }, "below")
	}
	if rule.Decorate != nil {
		decorated := *rule.Decorate
		e.perform(id, func() { e.srv.SetDecorated(id, decorated) },
			"decorate", "decorated", decorated)
	}
	if isSet(rule.Focus) {
		e.perform(id, func() { e.srv.Activate(id) }, "focus")
	}
	if rule.Opacity != nil {
		opacity := *rule.Opacity
		e.perform(id, func() { e.srv.SetOpacity(id, opacity) },
			"opacity", "value", opacity)
	}

	if !e.dryRun {
		e.srv.Flush()
	}
}

// perform executes one action primitive, or logs it in dry-run mode.
func (e *Engine) perform(id backend.WindowID, op func(), action string, args ...any) {
	fields := append([]any{"window", uint32(id)}, args...)
	if e.dryRun {
		e.logger.Info("dry-run: "+action, fields...)
		return
	}
	e.logger.Debug(action, fields...)
	op()
}

func (e *Engine) targetMonitor(id backend.WindowID, rule *rules.CompiledRule) layout.Monitor {
	var winRect *layout.Rect
	if geom, ok := e.srv.Geometry(id); ok {
		winRect = &geom
	}
	return rules.ResolveMonitor(e.srv.Monitors(), rule.Monitor, winRect)
}

// reloadRules swaps in a freshly compiled rule set, or keeps the previous
// one when loading fails.
func (e *Engine) reloadRules(reason string) {
	if e.reload == nil {
		return
	}
	e.logger.Info("reloading rules", "reason", reason)
	newRules, err := e.reload()
	if err != nil {
		e.logger.Error("reload rejected, keeping previous rules", "error", err)
		return
	}
	e.rules = newRules
	e.logger.Info("rules reloaded", "rules", len(newRules))
}

func isSet(b *bool) bool {
	return b != nil && *b
}
