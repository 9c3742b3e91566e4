package parser

import "strings"

// isDateNumFmt reports whether a built-in number format id or a custom
// format code renders its value as a date or time.
func isDateNumFmt(numFmtID int, custom *string) bool {
	if custom != nil {
		return isDateFormatCode(*custom)
	}
	switch {
	case numFmtID >= 14 && numFmtID <= 22,
		numFmtID >= 27 && numFmtID <= 36,
		numFmtID >= 45 && numFmtID <= 47,
		numFmtID >= 50 && numFmtID <= 58:
		return true
	}
	return false
}

// isDateFormatCode scans the first section of a format code for date or
// time tokens, skipping quoted literals, escapes and bracketed modifiers
// such as colours and locales. Elapsed-time brackets ([h], [mm]) count.
func isDateFormatCode(code string) bool {
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	code = strings.ReplaceAll(strings.ToLower(code), "general", "")
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '"':
			j := strings.IndexByte(code[i+1:], '"')
			if j < 0 {
				return false
			}
			i += j + 1
		case '\\', '_', '*':
			i++
		case '[':
			j := strings.IndexByte(code[i+1:], ']')
			if j < 0 {
				return false
			}
			inner := code[i+1 : i+1+j]
			if inner != "" && strings.Trim(inner, "hms") == "" {
				return true
			}
			i += j + 1
		case 'y', 'd', 'm', 'h', 's':
			return true
		}
	}
	return false
}
