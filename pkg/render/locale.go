package render

import (
	"time"

	"golang.org/x/text/language"
)

// dateFormats are short date layouts for the collection subtitle. The
// first entry is the fallback.
var dateFormats = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.MustParse("en-CA"), "2006-01-02"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.Portuguese, "02/01/2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateFormats))
	for i, f := range dateFormats {
		tags[i] = f.tag
	}
	return language.NewMatcher(tags)
}()

// formatDate formats t as a short date for the closest supported locale.
func formatDate(t time.Time, tag language.Tag) string {
	_, i, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		i = 0
	}
	return t.Format(dateFormats[i].layout)
}
