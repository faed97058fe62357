package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeWindow - интервал времени в минутах от полуночи, границы включительно
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps проверяет пересечение двух интервалов
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start <= other.End && other.Start <= w.End
}

// Contains проверяет, попадает ли минута в интервал
func (w TimeWindow) Contains(minute int) bool {
	return minute >= w.Start && minute <= w.End
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}

var clockRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)

// ParseClock разбирает время формата "HH:MM" в минуты от полуночи
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// ParseTimeRanges извлекает все интервалы "HH:MM - HH:MM" из произвольного
// выражения часов работы ("Mon - Fri: 11:30 - 22:00, Sat: 10:00 - 23:00").
// Интервал через полночь (22:00 - 02:00) разбивается на два.
func ParseTimeRanges(expr string) []TimeWindow {
	matches := clockRangeRe.FindAllStringSubmatch(expr, -1)
	if len(matches) == 0 {
		return nil
	}

	windows := make([]TimeWindow, 0, len(matches))
	for _, m := range matches {
		start, err := ParseClock(m[1] + ":" + m[2])
		if err != nil {
			continue
		}
		end, err := ParseClock(m[3] + ":" + m[4])
		if err != nil {
			continue
		}

		if end < start {
			// Через полночь
			windows = append(windows,
				TimeWindow{Start: start, End: 23*60 + 59},
				TimeWindow{Start: 0, End: end},
			)
			continue
		}
		windows = append(windows, TimeWindow{Start: start, End: end})
	}
	return windows
}

// Значения-сентинелы в таблицах часов работы
const (
	hoursClosed = "closed"
	hoursAlways = "always"
)

// classifyHours нормализует выражение часов: closed / always / ranges
func classifyHours(expr string) (string, []TimeWindow) {
	normalized := strings.ToLower(strings.TrimSpace(expr))

	switch {
	case normalized == "":
		return hoursAlways, nil
	case strings.Contains(normalized, "closed"):
		return hoursClosed, nil
	case strings.Contains(normalized, "24 hours"),
		strings.Contains(normalized, "24/7"),
		strings.Contains(normalized, "always"):
		return hoursAlways, nil
	}

	ranges := ParseTimeRanges(normalized)
	if len(ranges) == 0 {
		// Нераспознанное выражение трактуем как отсутствие ограничений
		return hoursAlways, nil
	}
	return "", ranges
}

// hoursPermit проверяет, допускает ли выражение часов работу в окне
func hoursPermit(expr string, w TimeWindow) bool {
	kind, ranges := classifyHours(expr)
	switch kind {
	case hoursClosed:
		return false
	case hoursAlways:
		return true
	}
	for _, r := range ranges {
		if r.Overlaps(w) {
			return true
		}
	}
	return false
}
