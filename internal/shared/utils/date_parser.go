package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout là format ISO-8601 mà Webflow CMS nhận cho field kiểu DateTime
const ISOLayout = "2006-01-02T15:04:05.000Z"

const (
	minTextYear = 1900
	maxTextYear = 2100
)

// ParsedDate là kết quả của ParseFlexibleDate
type ParsedDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
	ISO   string
}

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var (
	isoPrefixPattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	slashPattern        = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	monthYearPattern    = regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{4})$`)
	monthDayYearPattern = regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{1,2}),?\s+(\d{4})$`)
	yearPattern         = regexp.MustCompile(`^(\d{4})$`)
)

// isoLayouts are tried in order for input that starts with YYYY-MM-DD
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleDate parse các format ngày người dùng nhập trên form:
//
//	"2025-06-01", "2025-06-01T10:00:00Z"  → ISO
//	"06/01/2025", "06/01/25"              → month/day/year
//	"June 1990"                           → day = 1
//	"June 1 2025", "June 1, 2025"         → explicit day
//	"1990"                                → January 1
//
// Trả về ok = false nếu không parse được. Hàm không bao giờ panic.
func ParseFlexibleDate(input string) (ParsedDate, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return ParsedDate{}, false
	}

	// Step 1: ISO prefix
	if isoPrefixPattern.MatchString(s) {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return newParsedDate(t.UTC()), true
			}
		}
		return ParsedDate{}, false
	}

	// Step 2: MM/DD/YYYY or MM/DD/YY
	if m := slashPattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			if year < 30 {
				year += 2000
			} else {
				year += 1900
			}
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return ParsedDate{}, false
		}
		return dateOf(year, month, day), true
	}

	// Step 3: "June 1990"
	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		month, known := lookupMonth(m[1])
		year, _ := strconv.Atoi(m[2])
		if !known || !textYearInRange(year) {
			return ParsedDate{}, false
		}
		return dateOf(year, month, 1), true
	}

	// Step 4: "June 1 2025" / "June 1, 2025"
	if m := monthDayYearPattern.FindStringSubmatch(s); m != nil {
		month, known := lookupMonth(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if !known || day < 1 || day > 31 || !textYearInRange(year) {
			return ParsedDate{}, false
		}
		return dateOf(year, month, day), true
	}

	// Step 5: "1990"
	if m := yearPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		if !textYearInRange(year) {
			return ParsedDate{}, false
		}
		return dateOf(year, 1, 1), true
	}

	return ParsedDate{}, false
}

// ParseDateOrDefault trả về ISO string của input, hoặc now() nếu input rỗng / không parse được
func ParseDateOrDefault(input string, now func() time.Time) string {
	if parsed, ok := ParseFlexibleDate(input); ok {
		return parsed.ISO
	}
	return FormatISO(now())
}

// FormatISO formats t the way the CMS stores DateTime fields
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// FormatDate trả về dạng hiển thị, ví dụ "June 1, 2025"
func FormatDate(d ParsedDate) string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return fmt.Sprintf("%s %d, %d", time.Month(d.Month).String(), d.Day, d.Year)
}

func lookupMonth(name string) (int, bool) {
	month, ok := monthNames[strings.ToLower(name)]
	return month, ok
}

func textYearInRange(year int) bool {
	return year >= minTextYear && year <= maxTextYear
}

// dateOf builds a UTC-midnight date. Days past the end of the month roll
// forward (02/31 → March 3), and the decomposed fields follow the rolled date.
func dateOf(year, month, day int) ParsedDate {
	return newParsedDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

func newParsedDate(t time.Time) ParsedDate {
	return ParsedDate{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
		ISO:   FormatISO(t),
	}
}
