package cli

import (
	"fmt"
	"strings"
)

// OptionList renders a message followed by a 1-based numbered menu.
// Pure string building; color and the trailing "> " marker belong to the
// sink.
func OptionList(msg string, options []string) string {
	var b strings.Builder
	b.WriteString(msg)
	for i, opt := range options {
		fmt.Fprintf(&b, "\n%d) %s", i+1, opt)
	}
	return b.String()
}
