//go:build windows

package cli

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const cpUTF8 = 65001

var procWideCharToMultiByte = windows.NewLazySystemDLL("kernel32.dll").NewProc("WideCharToMultiByte")

// Args ignores the raw vector, which was decoded with the console code page,
// and re-reads the command line from the OS as UTF-16.
func (p ProcessArgs) Args() ([]string, error) {
	var argc int32

	argv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if err != nil {
		return nil, fmt.Errorf("CommandLineToArgvW failed: %w", err)
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(argv))) //nolint:errcheck

	args := make([]string, argc)
	for i := range args {
		arg, err := wideToUTF8(&argv[i][0])
		if err != nil {
			return nil, fmt.Errorf("failed to transcode argument %d: %w", i, err)
		}

		args[i] = arg
	}

	return args, nil
}

// wideToUTF8 transcodes a NUL-terminated UTF-16 string. The first call sizes
// the buffer, the second fills it.
func wideToUTF8(wide *uint16) (string, error) {
	wideLen := wcslen(wide)
	if wideLen == 0 {
		return "", nil
	}

	n, _, err := procWideCharToMultiByte.Call(
		cpUTF8, 0,
		uintptr(unsafe.Pointer(wide)), uintptr(wideLen),
		0, 0, 0, 0,
	)
	if n == 0 {
		return "", fmt.Errorf("WideCharToMultiByte size query failed: %w", err)
	}

	buf := make([]byte, n)

	written, _, err := procWideCharToMultiByte.Call(
		cpUTF8, 0,
		uintptr(unsafe.Pointer(wide)), uintptr(wideLen),
		uintptr(unsafe.Pointer(&buf[0])), n,
		0, 0,
	)
	if written == 0 {
		return "", fmt.Errorf("WideCharToMultiByte failed: %w", err)
	}

	return string(buf[:written]), nil
}

func wcslen(p *uint16) int {
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; ptr = unsafe.Add(ptr, 2) {
		n++
	}

	return n
}
