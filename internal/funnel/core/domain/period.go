package domain

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type PeriodMode string

const (
	PeriodDay   PeriodMode = "day"
	PeriodWeek  PeriodMode = "week"
	PeriodMonth PeriodMode = "month"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// ParsePeriodMode falls back to PeriodDay for anything it does not recognise.
func ParsePeriodMode(s string) PeriodMode {
	switch PeriodMode(s) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodDay
	}
}

// BucketKey maps t to the key of the period containing it, using t's location.
//
//	day   -> 2006-01-02
//	week  -> date of the Monday starting t's ISO week
//	month -> 2006-01
//
// Keys of the same mode compare as strings in chronological order.
func BucketKey(t time.Time, mode PeriodMode) string {
	switch ParsePeriodMode(string(mode)) {
	case PeriodWeek:
		offset := (int(t.Weekday()) + 6) % 7
		y, m, d := t.Date()
		monday := time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
		return monday.Format(dayKeyLayout)
	case PeriodMonth:
		return t.Format(monthKeyLayout)
	default:
		return t.Format(dayKeyLayout)
	}
}

var (
	supportedLocales = []language.Tag{language.Spanish, language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// MatchLocale picks the supported label locale closest to s (a BCP 47 tag or
// Accept-Language value). Spanish is the default.
func MatchLocale(s string) language.Tag {
	_, idx := language.MatchStrings(localeMatcher, s)
	return supportedLocales[idx]
}

var monthAbbr = map[language.Tag][12]string{
	language.Spanish: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	language.English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var weekPrefix = map[language.Tag]string{
	language.Spanish: "Sem",
	language.English: "Wk",
}

// Label renders a bucket key for display. A key that does not parse for
// mode is returned unchanged.
func Label(key string, mode PeriodMode, locale language.Tag) string {
	locale = MatchLocale(locale.String())
	months := monthAbbr[locale]

	switch ParsePeriodMode(string(mode)) {
	case PeriodMonth:
		t, err := time.Parse(monthKeyLayout, key)
		if err != nil {
			return key
		}
		return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
	case PeriodWeek:
		t, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			return key
		}
		return fmt.Sprintf("%s %02d %s", weekPrefix[locale], t.Day(), months[t.Month()-1])
	default:
		t, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			return key
		}
		return fmt.Sprintf("%02d %s", t.Day(), months[t.Month()-1])
	}
}
