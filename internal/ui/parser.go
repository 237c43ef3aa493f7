package ui

import (
	"os"
	"strings"
)

// ParseCSS parses a primitive CSS file: rules whose selectors are .class or #id
// (comma-separated lists allowed) followed by a block of "key: value;" pairs.
// No combinators, no @rules; other selectors are skipped. Later rules override earlier.
func ParseCSS(content string) *Stylesheet {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for {
		open := strings.IndexByte(content, '{')
		if open < 0 {
			break
		}
		close := findMatchingBrace(content, open)
		if close < 0 {
			break
		}
		props := parseDeclarations(content[open+1 : close])
		for _, sel := range strings.Split(content[:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		content = content[close+1:]
	}
	return sheet
}

// LoadCSS reads and parses a stylesheet file.
func LoadCSS(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSS(string(data)), nil
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok || k == "" {
			continue
		}
		props[k] = strings.TrimSpace(v)
	}
	return props
}
