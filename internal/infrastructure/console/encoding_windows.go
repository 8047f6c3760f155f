//go:build windows

package console

import "golang.org/x/sys/windows"

const codePageUTF8 = 65001

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	setConsoleCP       = kernel32.NewProc("SetConsoleCP")
	setConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

// EnableUTF8 switches the console code pages to UTF-8 so the launcher's
// non-ASCII diagnostics render correctly. Must run before any text output.
func EnableUTF8() {
	setConsoleCP.Call(uintptr(codePageUTF8))
	setConsoleOutputCP.Call(uintptr(codePageUTF8))
}
