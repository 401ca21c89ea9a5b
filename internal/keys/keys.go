// Package keys maps raw terminal input codes to typed glyphs.
package keys

import "unicode/utf8"

// Codes handled by the session directly rather than through the glyph table.
const (
	CodeSpace     = 32
	CodeBackspace = 127
)

// glyphs maps input codes to the glyph they produce. Accented letters arrive
// as multi-byte UTF-8 sequences; they are keyed by their trailing byte, the
// leading bytes have no entry and are dropped.
var glyphs = map[int]string{
	33: "!", 34: "\"", 35: "#", 36: "$", 37: "%", 38: "&", 39: "'",
	40: "(", 41: ")", 42: "*", 43: "+", 44: ",", 45: "-", 46: ".", 47: "/",
	48: "0", 49: "1", 50: "2", 51: "3", 52: "4",
	53: "5", 54: "6", 55: "7", 56: "8", 57: "9",
	58: ":", 59: ";", 60: "<", 61: "=", 62: ">", 63: "?", 64: "@",
	65: "A", 66: "B", 67: "C", 68: "D", 69: "E", 70: "F", 71: "G",
	72: "H", 73: "I", 74: "J", 75: "K", 76: "L", 77: "M", 78: "N",
	79: "O", 80: "P", 81: "Q", 82: "R", 83: "S", 84: "T", 85: "U",
	86: "V", 87: "W", 88: "X", 89: "Y", 90: "Z",
	91: "[", 92: "\\", 93: "]",
	97: "a", 98: "b", 99: "c", 100: "d", 101: "e", 102: "f", 103: "g",
	104: "h", 105: "i", 106: "j", 107: "k", 108: "l", 109: "m", 110: "n",
	111: "o", 112: "p", 113: "q", 114: "r", 115: "s", 116: "t", 117: "u",
	118: "v", 119: "w", 120: "x", 121: "y", 122: "z",
	123: "{", 124: "|", 125: "}",

	129: "Á", 130: "Â", 131: "Ã",
	137: "É", 138: "Ê",
	141: "Í", 142: "Î",
	147: "Ó", 148: "Ô", 149: "Õ",
	154: "Ú", 155: "Û",
	161: "á", 162: "â", 163: "ã",
	167: "ç",
	168: "Ũ",
	169: "é", 170: "ê",
	173: "í", 174: "î",
	179: "ó", 180: "ô", 181: "õ",
	186: "ú", 187: "û",
	188: "Ẽ", 189: "ẽ",
}

// Decode returns the glyph for an input code. Unknown codes report false.
func Decode(code int) (string, bool) {
	g, ok := glyphs[code]
	return g, ok
}

// DecodeRune maps a rune delivered by the terminal library to a glyph. The
// rune is accepted only when its input code decodes back to the same rune.
func DecodeRune(r rune) (string, bool) {
	code, ok := codeFor(r)
	if !ok {
		return "", false
	}
	g, ok := Decode(code)
	if !ok || g != string(r) {
		return "", false
	}
	return g, true
}

func codeFor(r rune) (int, bool) {
	if r < utf8.RuneSelf {
		return int(r), true
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if n == 0 || r == utf8.RuneError {
		return 0, false
	}
	return int(buf[n-1]), true
}

// Typable reports whether every rune of s can be produced from the table.
func Typable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := DecodeRune(r); !ok {
			return false
		}
	}
	return true
}
