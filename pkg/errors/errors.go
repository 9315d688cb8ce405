package errorutils

import (
	"fmt"
	"io"
	"os"
)

func Try(err error) {
	if err != nil {
		panic(err)
	}
}

func Must[T any](v T, err error) T {
	Try(err)
	return v
}

// Report writes err to w and returns the process exit code for it.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(w, "error:", err)
	return 1
}

// Exit terminates the process when err is not nil.
func Exit(err error) {
	if code := Report(os.Stderr, err); code != 0 {
		os.Exit(code)
	}
}
