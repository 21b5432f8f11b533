package executor

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Quote returns s quoted for use as a single bash word
func Quote(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil { //non printable content
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return quoted
}

// QuoteAll quotes each argument and joins them with space
func QuoteAll(args ...string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, Quote(arg))
	}
	return strings.Join(quoted, " ")
}

// InDir prefixes command with change of working directory
func InDir(dir, command string) string {
	return "cd " + Quote(dir) + " && " + command
}
