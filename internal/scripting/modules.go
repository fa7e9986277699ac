package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the den.* helper table into L.
//
//	den.log(msg)           writes msg to the server log at Info
//	den.count(built, id)   returns built[id] or 0
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: den global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"log": func(L *lua.LState) int {
			m.logger.Info("scripting: lua", zap.String("msg", L.CheckString(1)))
			return 0
		},
		"count": func(L *lua.LState) int {
			built := L.CheckTable(1)
			id := L.CheckString(2)
			if n, ok := built.RawGetString(id).(lua.LNumber); ok {
				L.Push(n)
			} else {
				L.Push(lua.LNumber(0))
			}
			return 1
		},
	})
	L.SetGlobal("den", mod)
}
