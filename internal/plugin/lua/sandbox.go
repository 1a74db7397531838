package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// dangerousGlobals load code from disk or from strings.
var dangerousGlobals = []string{"dofile", "loadfile", "load", "loadstring"}

// openSafeLibraries opens only safe Lua standard libraries.
//
// Not opened: io, os, debug.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenPackage(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox removes the code-loading globals and empties the require
// search path, so only preloaded modules resolve.
func installSandbox(L *lua.LState) {
	for _, name := range dangerousGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	pkg, ok := L.GetGlobal("package").(*lua.LTable)
	if !ok {
		return
	}
	L.SetField(pkg, "path", lua.LString(""))
	L.SetField(pkg, "cpath", lua.LString(""))
}
