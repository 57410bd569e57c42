package processors

import (
	"strings"

	md2slides "github.com/alnah/go-md2slides"
)

// Tidy normalizes a line without ever expanding it: CRLF and bare CR line
// endings become "\n", and trailing spaces and tabs before the line ending
// are stripped. Lines without a trailing newline stay that way.
type Tidy struct{}

// newTidy is the registry factory for the "tidy" kind. It takes no options.
func newTidy(options map[string]any) (md2slides.Processor, error) {
	var opts struct{}
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return Tidy{}, nil
}

func (Tidy) Kind() string { return "tidy" }

func (Tidy) Process(line string) (md2slides.Result, error) {
	hadNewline := strings.HasSuffix(line, "\n")

	body := strings.TrimSuffix(line, "\n")
	body = strings.TrimSuffix(body, "\r")
	body = strings.TrimRight(body, " \t")

	if hadNewline {
		body += "\n"
	}
	return md2slides.Single(body), nil
}
