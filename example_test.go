// SPDX-License-Identifier: EPL-2.0

package sc12conv_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/misrei/sc12conv"
)

// Example_convertDir converts every .sc12 file in a directory.
func Example_convertDir() {
	dir, _ := os.MkdirTemp("", "sc12conv")
	defer os.RemoveAll(dir)

	// One group plus two leftover bytes, and a file that is ignored
	_ = os.WriteFile(filepath.Join(dir, "capture.sc12"), []byte{0xff, 0x0f, 0x00, 0x01, 0x02}, 0o644)
	_ = os.WriteFile(filepath.Join(dir, "notes.sc13"), []byte{0x00, 0x00, 0x00}, 0o644)

	report, err := sc12conv.ConvertDir(dir, sc12conv.Options{Logger: log.New(io.Discard)})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fi, _ := os.Stat(filepath.Join(dir, "capture.fc32"))
	fmt.Printf("Converted %d, failed %d\n", report.Converted, report.Failed)
	fmt.Printf("Output: %d bytes\n", fi.Size())
	// Output:
	// Converted 1, failed 0
	// Output: 8 bytes
}
