//go:build !windows

package sink

func lineSeparator() string { return "\n" }
