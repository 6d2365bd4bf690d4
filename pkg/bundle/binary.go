package bundle

import "bytes"

// sniffLen bounds how much of a file is inspected for binary content.
const sniffLen = 512

// isBinary reports whether content looks like binary data, judged from its
// first 512 bytes: any NUL byte, or more than 30% non-printable characters.
func isBinary(content []byte) bool {
	sample := content
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	if len(sample) == 0 {
		return false // Empty files are considered text
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character or
// common whitespace. High bytes pass so UTF-8 text is not misclassified.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b >= 128 || b == '\n' || b == '\r' || b == '\t'
}
