package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exitf writes a formatted error message prefixed with the program name to
// stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]any{filepath.Base(os.Args[0])}, args...)...)
	os.Exit(1)
}
