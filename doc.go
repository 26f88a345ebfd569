// SPDX-License-Identifier: EPL-2.0

// Package sc12conv converts packed 12-bit I/Q captures (.sc12) into 32-bit
// float I/Q files (.fc32).
//
// # Quick Start
//
// Convert every .sc12 file in a directory, writing the output next to each
// input:
//
//	report, err := sc12conv.ConvertDir(".", sc12conv.Options{})
//	if err != nil {
//	    // the directory could not be listed
//	}
//	fmt.Println(report.Converted, report.Failed)
//
// Only files whose extension is exactly ".sc12" are picked up. Files are
// converted one at a time, and a failure on one file is logged and skipped.
//
// # Single Files
//
//	err := sc12conv.ConvertFile("capture.sc12", "capture.fc32", sc12conv.Options{})
//
// The returned error is a *FileError naming the failed step (OpOpenInput,
// OpOpenOutput, OpRead or OpWrite). An existing output file is truncated.
//
// # Output Formats
//
// Options.Format selects the encoder registered for that extension:
//   - "fc32": raw little-endian float32, 8 bytes per I/Q pair (default)
//   - "wav": 16-bit stereo PCM WAV via formats/wav
//   - "aiff": 16-bit stereo PCM AIFF via formats/aiff
//
// The wav and aiff headers record Options.SampleRate.
//
// # Reporting
//
// Status lines go to Options.Logger (github.com/charmbracelet/log):
//
//	Converted: capture.sc12 -> capture.fc32
//	Failed to open input file: broken.sc12
//
// See the formats/sc12 package for the sample layout.
package sc12conv
