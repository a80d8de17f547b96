package formatter

var _ Format = (*AsciiFormatter)(nil)

type AsciiFormatter struct {
}

func (f *AsciiFormatter) Format(data string) ([]byte, error) {
	return []byte(data), nil
}
