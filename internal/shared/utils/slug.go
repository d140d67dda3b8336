package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	editCodeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	randomSlugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	EditCodeLength   = 6
	RandomSlugLength = 10
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug chuyển text thành slug dùng cho field "slug" của CMS item
//
//	"Nguyễn Nhật Ánh" → "nguyen-nhat-anh"
//	"Mary O'Brien!"   → "mary-o-brien"
func GenerateSlug(input string) string {
	// Step 1: Strip accents
	ascii := RemoveDiacritics(input)

	// Step 2: Lowercase
	lower := strings.ToLower(ascii)

	// Step 3: Collapse every run of non [a-z0-9] into a single hyphen
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")

	// Step 4: Trim leading/trailing hyphens
	return strings.Trim(hyphenated, "-")
}

// SlugOrFallback trả về slug của text, hoặc "<prefix>-<unix millis>" nếu text không có ký tự hợp lệ
func SlugOrFallback(text, prefix string, now time.Time) string {
	if slug := GenerateSlug(text); slug != "" {
		return slug
	}
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// UniqueSlug appends the last six digits of the millisecond clock so two
// entries with the same title still get distinct slugs.
//
//	UniqueSlug("Moved to Ohio", "timeline", now) → "moved-to-ohio-482913"
func UniqueSlug(text, prefix string, now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return SlugOrFallback(text, prefix, now) + "-" + millis
}

// RemoveDiacritics bỏ dấu (tất cả các tone của "a" => "a")
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	// đ/Đ không có dạng decomposed
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}

// GenerateEditCode sinh mã 6 ký tự [A-Z0-9] lưu cùng item, dùng để tự sửa entry sau này
func GenerateEditCode() string {
	return randomString(editCodeAlphabet, EditCodeLength)
}

// GenerateRandomSlug sinh slug ngẫu nhiên 10 ký tự [a-z0-9]
func GenerateRandomSlug() string {
	return randomString(randomSlugAlphabet, RandomSlugLength)
}

func randomString(alphabet string, n int) string {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(fmt.Sprintf("crypto/rand: %v", err))
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}
