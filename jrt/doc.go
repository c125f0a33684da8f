// Package jrt implements the native support runtime that ahead-of-time
// compiled bytecode links against.
//
// This package contains:
//   - Fat-pointer references and heap allocation
//   - Object and array layout
//   - VTable and itable method dispatch
//   - Per-object monitors (reentrant lock + wait/notify)
//   - Exception propagation and fatal traps
//   - Thread naming and the program entry point
package jrt
