package form

// Aliases maps a logical field to the form field names that may carry it,
// in priority order. Webflow forms have been rebuilt several times, so one
// value can arrive under different names.
type Aliases map[string][]string

// Resolved là kết quả tra alias table một lần cho cả submission
type Resolved map[string]string

// Resolve lấy giá trị khác rỗng đầu tiên theo thứ tự alias cho từng logical field
func (a Aliases) Resolve(v *Values) Resolved {
	out := make(Resolved, len(a))
	for logical, names := range a {
		for _, name := range names {
			if val := v.Get(name); val != "" {
				out[logical] = val
				break
			}
		}
	}
	return out
}

// Get trả về "" nếu field không có
func (r Resolved) Get(field string) string {
	return r[field]
}

func (r Resolved) Has(field string) bool {
	return r[field] != ""
}
