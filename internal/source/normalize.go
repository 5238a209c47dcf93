package source

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a BOM, folds CRLF to LF and converts valid UTF-8 to NFC,
// so equal template text hoists into a single template.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, bom); ok {
		content = rest
		flags |= FileHadBOM
	}
	// одиночный \r остаётся как есть
	if bytes.Contains(content, []byte("\r\n")) {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
		flags |= FileNormalizedCRLF
	}
	if utf8.Valid(content) && !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= FileNormalizedNFC
	}
	return content, flags
}
