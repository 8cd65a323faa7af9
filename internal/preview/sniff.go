package preview

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

type bomEncoding int

const (
	bomNone bomEncoding = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".a": {}, ".bin": {}, ".bmp": {}, ".bz2": {}, ".class": {},
	".dll": {}, ".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {},
	".iso": {}, ".jar": {}, ".jpeg": {}, ".jpg": {}, ".mkv": {}, ".mov": {},
	".mp3": {}, ".mp4": {}, ".o": {}, ".pdf": {}, ".png": {}, ".so": {},
	".tar": {}, ".tgz": {}, ".ttf": {}, ".wasm": {}, ".webp": {}, ".woff2": {},
	".xz": {}, ".zip": {}, ".zst": {},
}

// looksLikeText sniffs the head of a file. Known binary extensions are
// rejected before the content is inspected.
func looksLikeText(path string, content []byte) bool {
	if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if detectBOM(sample) != bomNone {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	default:
		return b >= 0x20 && b != 0x7F
	}
}

func detectBOM(sample []byte) bomEncoding {
	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return bomUTF8
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}):
		return bomUTF16LE
	case bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return bomUTF16BE
	default:
		return bomNone
	}
}

// decodeText turns BOM-prefixed content into a UTF-8 string.
func decodeText(content []byte) string {
	switch detectBOM(content) {
	case bomUTF8:
		return string(content[3:])
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

func readHead(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(io.LimitReader(f, limit))
}
