package source

import (
	"bytes"
	"path/filepath"
	"sort"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeNewlines folds CRLF and lone CR into LF. LS and PS are left as
// they are: they end a line but may also appear inside string literals.
func normalizeNewlines(content []byte) ([]byte, bool) {
	if bytes.IndexByte(content, '\r') < 0 {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		b := content[i]
		if b != '\r' {
			out = append(out, b)
			continue
		}
		out = append(out, '\n')
		if i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
	}
	return out, true
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, utf8BOM) {
		return content[len(utf8BOM):], true
	}
	return content, false
}

// terminatorAt returns the length of the JavaScript line terminator at i:
// LF, CR, CRLF, U+2028 or U+2029. Zero means none.
func terminatorAt(content []byte, i int) int {
	switch content[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(content) && content[i+1] == '\n' {
			return 2
		}
		return 1
	case 0xE2:
		if i+2 < len(content) && content[i+1] == 0x80 && (content[i+2] == 0xA8 || content[i+2] == 0xA9) {
			return 3
		}
	}
	return 0
}

// buildLineIndex records the start offset of every line after the first.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i := 0; i < len(content); {
		n := terminatorAt(content, i)
		if n == 0 {
			i++
			continue
		}
		i += n
		out = append(out, uint32(i)) // #nosec G115 -- content length checked by caller
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число начал строк, не превышающих off
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] > off })
	var start uint32
	if line > 0 {
		start = lineIdx[line-1]
	}
	return LineCol{Line: uint32(line + 1), Col: off - start + 1} // #nosec G115 -- bounded by line count
}

// lineBounds returns [start, end) of 1-based line n without its terminator.
func lineBounds(content []byte, lineIdx []uint32, n int) (start, end int, ok bool) {
	if n < 1 || n > len(lineIdx)+1 {
		return 0, 0, false
	}
	if n > 1 {
		start = int(lineIdx[n-2])
	}
	end = len(content)
	if n <= len(lineIdx) {
		end = int(lineIdx[n-1])
		// терминатор строки единственный и стоит в конце
		for i := start; i < end; i++ {
			if t := terminatorAt(content, i); t > 0 && i+t == end {
				end = i
				break
			}
		}
	}
	return start, end, true
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
