//go:build !windows

package console

// EnableUTF8 is a no-op outside Windows; these consoles speak UTF-8 already.
func EnableUTF8() {}
