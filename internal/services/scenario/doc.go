// Package scenario runs Lua scripts against the dice engine.
//
// Scripts see a global dice table with roll and parse functions. A script
// passes when it runs to completion and fails when it raises an error,
// usually through assert.
package scenario
