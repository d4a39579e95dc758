// SPDX-License-Identifier: MIT

package art

import "strings"

// Dedent cleans up a multi-line raw string literal so it can be embedded
// with natural source indentation. The first and last lines are dropped and
// the minimum leading-space indentation of the remaining non-empty lines is
// stripped from every line.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= 2 {
		return ""
	}
	content := lines[1 : len(lines)-1]

	indent := -1
	for _, line := range content {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := 0
		for _, r := range line {
			if r != ' ' {
				break
			}
			n++
		}
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		indent = 0
	}

	out := make([]string, len(content))
	for i, line := range content {
		runes := []rune(line)
		if len(runes) >= indent {
			out[i] = string(runes[indent:])
		} else {
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}
