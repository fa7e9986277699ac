package scripting_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/goblinden/internal/scripting"
)

func newTestManager(t testing.TB) (*scripting.Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	mgr := scripting.NewManager(zap.New(core))
	t.Cleanup(mgr.Close)
	return mgr, logs
}

func writeTempLua(t testing.TB, filename, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(src), 0644))
	return dir
}

func hasLevel(logs *observer.ObservedLogs, level zapcore.Level) bool {
	for _, e := range logs.All() {
		if e.Level == level {
			return true
		}
	}
	return false
}

func TestManager_Load_CallsHook(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "hooks.lua", `
		function test_hook(a, b)
			return a + b
		end
	`)
	require.NoError(t, mgr.Load(dir, 0))
	ret, err := mgr.CallHook("test_hook", lua.LNumber(3), lua.LNumber(4))
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(7), ret)
	assert.Len(t, mgr.Scripts(), 1)
}

func TestManager_CallHook_NothingLoaded(t *testing.T) {
	mgr, _ := newTestManager(t)
	ret, err := mgr.CallHook("anything")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestManager_CallHook_MissingHook_NoOp(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "empty.lua", `-- no functions`), 0))
	ret, err := mgr.CallHook("nonexistent_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestManager_CallHook_RuntimeError_WarnLogNoPanic(t *testing.T) {
	mgr, logs := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "bad.lua", `
		function bad_hook()
			error("intentional error")
		end
	`), 0))
	ret, err := mgr.CallHook("bad_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	assert.True(t, hasLevel(logs, zapcore.WarnLevel), "expected Warn log for Lua runtime error")
}

func TestManager_CallHook_RunawayHookIsBounded(t *testing.T) {
	mgr, logs := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "spin.lua", `
		function spin() while true do end end
		function ok() return 1 end
	`), 100))
	ret, err := mgr.CallHook("spin")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	assert.True(t, hasLevel(logs, zapcore.WarnLevel))

	ret, err = mgr.CallHook("ok")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(1), ret)
}

func TestManager_Load_EmptyDir_NoError(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(t.TempDir(), 0))
	assert.Empty(t, mgr.Scripts())
}

func TestManager_Load_InvalidLua_KeepsPrevious(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "good.lua", `function v() return 1 end`), 0))

	err := mgr.Load(writeTempLua(t, "bad.lua", `this is not valid lua @@@@`), 0)
	assert.Error(t, err)

	ret, err := mgr.CallHook("v")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(1), ret)
}

func TestManager_Load_MissingDir(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.Error(t, mgr.Load(filepath.Join(t.TempDir(), "nope"), 0))
}

func TestManager_Load_MultipleFiles_OrderedByName(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte(`base_val = 10`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.lua"), []byte(`
		function get_val() return base_val end
	`), 0644))
	require.NoError(t, mgr.Load(dir, 0))
	ret, err := mgr.CallHook("get_val")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(10), ret)
}

func TestManager_DenModule(t *testing.T) {
	mgr, logs := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "mod.lua", `
		function farms()
			local built = {farm = 3}
			den.log("counting farms")
			return den.count(built, "farm") + den.count(built, "missing")
		end
	`), 0))
	ret, err := mgr.CallHook("farms")
	require.NoError(t, err)
	assert.Equal(t, lua.LNumber(3), ret)
	assert.Equal(t, 1, logs.FilterMessage("scripting: lua").Len())
}

func TestNewManager_PanicsOnNilLogger(t *testing.T) {
	assert.Panics(t, func() { scripting.NewManager(nil) })
}

func TestManager_Close_ReleasesState(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "init.lua", `function get_x() return 1 end`), 0))
	mgr.Close()
	ret, err := mgr.CallHook("get_x")
	assert.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	mgr.Close()
}

func TestUnlockOverride(t *testing.T) {
	mgr, logs := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "unlocks.lua", `
		function unlock_override(id, built)
			if id == "gate" then return (built["farm"] or 0) >= 2 end
			if id == "broken" then return 42 end
			if id == "crash" then error("boom") end
			return nil
		end
	`), 0))

	unlocked, ok := mgr.UnlockOverride("gate", map[string]int{"farm": 2})
	assert.True(t, ok)
	assert.True(t, unlocked)

	unlocked, ok = mgr.UnlockOverride("gate", map[string]int{"farm": 1})
	assert.True(t, ok)
	assert.False(t, unlocked)

	_, ok = mgr.UnlockOverride("farm", nil)
	assert.False(t, ok, "nil defers")

	_, ok = mgr.UnlockOverride("broken", nil)
	assert.False(t, ok, "non-boolean defers")
	assert.Equal(t, 1, logs.FilterMessage("scripting: unlock_override returned a non-boolean").Len())

	_, ok = mgr.UnlockOverride("crash", nil)
	assert.False(t, ok, "runtime error defers")
}

func TestUnlockOverride_NoScripts(t *testing.T) {
	mgr, _ := newTestManager(t)
	_, ok := mgr.UnlockOverride("anything", map[string]int{"farm": 1})
	assert.False(t, ok)
}

func TestUnlockOverride_Content(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load("../../content/scripts/unlocks", 0))

	unlocked, ok := mgr.UnlockOverride("war_drum", map[string]int{"farm": 2, "shrine": 1})
	assert.True(t, ok)
	assert.True(t, unlocked)

	unlocked, ok = mgr.UnlockOverride("war_drum", map[string]int{"farm": 1, "shrine": 1})
	assert.True(t, ok)
	assert.False(t, unlocked)

	_, ok = mgr.UnlockOverride("farm", map[string]int{})
	assert.False(t, ok)
}

func TestProperty_UnlockOverrideMatchesScript(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "unlocks.lua", `
		function unlock_override(id, built)
			return (built["farm"] or 0) >= 3
		end
	`), 0))
	rapid.Check(t, func(rt *rapid.T) {
		farms := rapid.IntRange(0, 10).Draw(rt, "farms")
		unlocked, ok := mgr.UnlockOverride("x", map[string]int{"farm": farms})
		assert.True(rt, ok)
		assert.Equal(rt, farms >= 3, unlocked)
	})
}

func TestManager_ConcurrentCalls_NoRace(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "hooks.lua", `
		function add(a, b) return a + b end
		function unlock_override(id, built) return true end
	`), 0))

	const goroutines = 10
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				ret, err := mgr.CallHook("add", lua.LNumber(1), lua.LNumber(2))
				assert.NoError(t, err)
				assert.Equal(t, lua.LNumber(3), ret)
				unlocked, ok := mgr.UnlockOverride("farm", map[string]int{"farm": j})
				assert.True(t, ok && unlocked)
			}
		}()
	}
	wg.Wait()
}
