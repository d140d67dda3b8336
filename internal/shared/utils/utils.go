package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID - Kiểm tra format UUID hợp lệ
func IsValidUUID(u string) bool {
	return ParseStringToUUID(u) != uuid.Nil
}

// FirstLine trả về dòng đầu tiên (đã trim) của text
func FirstLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// Truncate cắt text còn tối đa max rune, không cắt giữa ký tự UTF-8
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	r := []rune(text)
	return strings.TrimSpace(string(r[:max]))
}
