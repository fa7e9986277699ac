package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// UnlockHook is the Lua global consulted by UnlockOverride.
const UnlockHook = "unlock_override"

// Manager owns one sandboxed LState holding every loaded script and exposes
// hook dispatch.
//
// An LState is single-threaded, so all calls are serialized through mu.
type Manager struct {
	mu      sync.Mutex
	state   *lua.LState
	scripts []string
	limit   int
	logger  *zap.Logger
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: logger must be non-nil.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		panic("scripting: NewManager requires a non-nil logger")
	}
	return &Manager{logger: logger}
}

// Load creates a fresh VM, registers the den.* modules, then executes every
// *.lua file in dir in lexicographic order. A successful Load replaces the
// previously loaded VM; a failed Load leaves it untouched.
//
// Precondition: dir must be a readable directory; instLimit >= 0.
// Postcondition: Returns an error naming the first script that failed to load.
func (m *Manager) Load(dir string, instLimit int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	L := NewSandboxedState()
	m.RegisterModules(L)
	for _, path := range files {
		err := WithBudget(L, instLimit, func() error { return L.DoFile(path) })
		if err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	old := m.state
	m.state, m.scripts, m.limit = L, files, instLimit
	m.mu.Unlock()
	if old != nil {
		old.Close()
	}
	m.logger.Info("scripting: scripts loaded", zap.String("dir", dir), zap.Int("count", len(files)))
	return nil
}

// Scripts returns the paths of the loaded script files.
func (m *Manager) Scripts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.scripts...)
}

// CallHook calls the named Lua global function. Returns (LNil, nil) if nothing
// is loaded or the hook is not defined. Lua runtime errors, including an
// exhausted instruction budget, are logged at Warn and never propagated.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callLocked(hook, args...), nil
}

func (m *Manager) callLocked(hook string, args ...lua.LValue) lua.LValue {
	if m.state == nil {
		return lua.LNil
	}
	L := m.state
	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil
	}

	err := WithBudget(L, m.limit, func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...)
	})
	if err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret
}

// UnlockOverride asks the unlock_override hook whether buildingID is
// unlockable given the per-building counts of the den. ok is false when the
// hook is absent, returns nil, returns a non-boolean, or fails.
func (m *Manager) UnlockOverride(buildingID string, counts map[string]int) (unlocked, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return false, false
	}

	ret := m.callLocked(UnlockHook, lua.LString(buildingID), countsTable(m.state, counts))
	switch v := ret.(type) {
	case lua.LBool:
		return bool(v), true
	case *lua.LNilType:
		return false, false
	default:
		m.logger.Warn("scripting: unlock_override returned a non-boolean",
			zap.String("building", buildingID),
			zap.String("type", ret.Type().String()),
		)
		return false, false
	}
}

func countsTable(L *lua.LState, counts map[string]int) *lua.LTable {
	t := L.CreateTable(0, len(counts))
	for id, n := range counts {
		t.RawSetString(id, lua.LNumber(n))
	}
	return t
}

// Close releases the loaded VM. Subsequent hook calls are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.state.Close()
		m.state = nil
		m.scripts = nil
	}
}
