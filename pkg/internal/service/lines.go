package service

import "unicode/utf8"

// SplitLines 按行结束符切分文本，结果不含行结束符.
// 行结束符包括 \n、\r\n、\r 以及 \v、\f、\x1c、\x1d、\x1e、U+0085、U+2028、U+2029.
// 末尾的行结束符不会产生空行，空字符串返回空切片.
func SplitLines(s string) []string {
	lines := []string{}
	start := 0

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch r {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, s[start:i])
			i += size
			start = i
		case '\r':
			lines = append(lines, s[start:i])
			i += size

			if i < len(s) && s[i] == '\n' {
				i++
			}

			start = i
		default:
			i += size
		}
	}

	if start < len(s) {
		lines = append(lines, s[start:])
	}

	return lines
}
