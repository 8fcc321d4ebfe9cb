package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used by the events store.
const DateLayout = "2006-01-02"

var (
	inDurationRe  = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	nextWeekdayRe = regexp.MustCompile(`(?i)\bnext (monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	inSpanRe      = regexp.MustCompile(`(?i)\bin \d+ (days?|weeks?|months?)\b`)
	todayRe       = regexp.MustCompile(`(?i)\b(today|tonight)\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\btomorrow\b`)
)

var phraseRes = []*regexp.Regexp{tomorrowRe, nextWeekdayRe, inSpanRe, todayRe}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "Local" and "" use the host timezone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "Local"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Unknown phrases resolve to today
	return p.startOfDay(baseTime), nil
}

// Detect scans free text for a date phrase and resolves it with Parse.
// Recognised, in order: "tomorrow", "next <weekday>", "in N
// days|weeks|months", "today"/"tonight". found is false when none
// matched, in which case the result is today.
func (p *Parser) Detect(text string, baseTime time.Time) (date time.Time, found bool) {
	lower := strings.ToLower(text)

	for _, phrase := range []string{
		tomorrowRe.FindString(lower),
		nextWeekdayRe.FindString(lower),
		inSpanRe.FindString(lower),
		todayRe.FindString(lower),
	} {
		if phrase == "" {
			continue
		}
		if t, err := p.Parse(phrase, baseTime); err == nil {
			return t, true
		}
	}
	return p.startOfDay(baseTime), false
}

// StripPhrases removes every date phrase Detect recognises from text and
// collapses the whitespace left behind. The rest keeps its case.
func StripPhrases(text string) string {
	for _, re := range phraseRes {
		text = re.ReplaceAllString(text, " ")
	}
	return strings.Join(strings.Fields(text), " ")
}

// Today returns midnight of the current day in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) time.Time {
	return p.startOfDay(baseTime)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The same weekday as baseTime resolves a full week ahead.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
