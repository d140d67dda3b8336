// Package sequence allocates the human-facing running numbers stored on CMS
// items (guestbook-id, event-number, memory-id).
package sequence

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/pkg/logger"
)

// Allocator trả về max(field)+1 bằng cách quét toàn bộ item của collection.
//
// Trong một process, các lần Next cho cùng collection được serialize và luôn
// tăng dần (nhớ số đã cấp gần nhất). Giữa nhiều instance thì KHÔNG an toàn:
// hai request đồng thời ở hai instance có thể nhận cùng số. Webflow không có
// counter atomic nên giới hạn này được giữ nguyên và log cảnh báo một lần.
type Allocator struct {
	cms webflow.CMS

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	issued map[string]int

	warnOnce sync.Once
}

func NewAllocator(cms webflow.CMS) *Allocator {
	return &Allocator{
		cms:    cms,
		locks:  map[string]*sync.Mutex{},
		issued: map[string]int{},
	}
}

// Next trả về số tiếp theo cho field trong collection.
// Lỗi khi quét không chặn submission: kết quả fallback là max(1, số đã cấp + 1).
func (a *Allocator) Next(ctx context.Context, collectionID, field string) int {
	a.warnOnce.Do(func() {
		logger.Warn("Sequential IDs are derived from a CMS scan; concurrent submissions on different instances can collide", nil)
	})

	key := collectionID + "/" + field
	lock := a.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	next := 1
	highest, err := a.scanMax(ctx, collectionID, field)
	if err != nil {
		logger.ErrorWithFields("Failed to scan collection for next number", err, map[string]interface{}{
			"collection_id": collectionID,
			"field":         field,
		})
	} else {
		next = highest + 1
	}

	a.mu.Lock()
	if last := a.issued[key]; next <= last {
		next = last + 1
	}
	a.issued[key] = next
	a.mu.Unlock()

	return next
}

func (a *Allocator) lockFor(key string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	l, ok := a.locks[key]
	if !ok {
		l = &sync.Mutex{}
		a.locks[key] = l
	}
	return l
}

// scanMax đọc từng page 100 item cho tới page cuối
func (a *Allocator) scanMax(ctx context.Context, collectionID, field string) (int, error) {
	highest := 0
	offset := 0
	for {
		page, err := a.cms.ListItems(ctx, collectionID, webflow.ListOptions{Limit: webflow.MaxPageSize, Offset: offset})
		if err != nil {
			return 0, err
		}
		for _, item := range page.Items {
			if n := NumberField(item.FieldData, field); n > highest {
				highest = n
			}
		}
		if len(page.Items) < webflow.MaxPageSize {
			return highest, nil
		}
		offset += len(page.Items)
	}
}

// NumberField đọc field số từ fieldData; JSON number, string số, hoặc thiếu (→ 0)
func NumberField(data webflow.FieldData, field string) int {
	switch v := data[field].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return int(n)
	default:
		return 0
	}
}
