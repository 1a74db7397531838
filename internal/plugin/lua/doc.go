// Package lua runs user key hooks written in Lua.
//
// A State wraps a gopher-lua runtime with only the base, table, string,
// math and package libraries opened; file loading functions are removed
// and require only resolves preloaded modules. Every call runs under a
// timeout.
//
// Hook adapts a script defining a global on_key function to the key hook
// interface of the multi-cursor dispatcher:
//
//	function on_key(ev)
//	  if ev.key == "Tab" and ev.line:match("^%s*#") then
//	    return "# "      -- accept and type this instead
//	  end
//	  return false       -- decline, built-in handling runs
//	end
//
// The event table carries key, rune, ctrl, alt, shift, meta, position,
// anchor, line and column. Returning true accepts the key without editing.
package lua
