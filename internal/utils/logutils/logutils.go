package logutils

import (
	"fmt"
)

// FormatPrinter defers the formatting of a logged value until the log entry
// is actually written.
type FormatPrinter struct {
	verb string
	item any
}

func (v FormatPrinter) String() string {
	return fmt.Sprintf(v.verb, v.item)
}

// Format returns a Stringer that formats item with the given verb.
func Format(verb string, item any) FormatPrinter {
	return FormatPrinter{verb: verb, item: item}
}
