package utils

import (
	"golang.org/x/text/language"
)

type AcceptLanguage struct {
	Tag string
	Q   float32
}

// ParseAcceptLanguage parses an Accept-Language header, highest weight first.
func ParseAcceptLanguage(header string) []AcceptLanguage {
	tags, q, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	res := make([]AcceptLanguage, 0, len(tags))
	for i, tag := range tags {
		res = append(res, AcceptLanguage{
			Tag: tag.String(),
			Q:   q[i],
		})
	}
	return res
}
