// Package waitpolicy defines the action a spinning thread performs on each
// iteration of a wait loop: burn, yield, pause, or a caller-supplied closure
// that does productive work while it waits (the stealing sort uses this to
// interleave steal attempts with barrier waits).
package waitpolicy
