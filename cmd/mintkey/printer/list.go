package printer

import (
	"strconv"
	"strings"
)

var _ Print = (*ListPrinter)(nil)

// ListPrinter renders bytes as a list of decimal values, `[206, 1, 14]`.
type ListPrinter struct {
}

func (p *ListPrinter) Print(data []byte) string {
	return "[" + joinDecimal(data) + "]"
}

func joinDecimal(data []byte) string {
	sb := &strings.Builder{}
	for i, b := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}
