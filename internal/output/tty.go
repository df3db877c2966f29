package output

import (
	"io"
	"os"
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// UseColor resolves a --color mode (auto, always, never) against w.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case "never":
		return false
	case "always":
		return true
	default:
		return IsTTY(w)
	}
}
