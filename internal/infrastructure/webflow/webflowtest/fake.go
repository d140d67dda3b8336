// Package webflowtest provides an in-memory Webflow CMS for tests.
package webflowtest

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"webflow-forms-backend/internal/infrastructure/webflow"
)

// UploadedAsset records one UploadAsset call
type UploadedAsset struct {
	SiteID   string
	FileName string
	Data     []byte
}

// FakeCMS implements webflow.CMS and webflow.AssetUploader in memory.
// Set the *Err fields to make the matching call fail.
type FakeCMS struct {
	mu        sync.Mutex
	items     map[string][]webflow.Item
	published map[string]bool
	nextID    int

	Assets []UploadedAsset
	Calls  []string

	ListErr    error
	GetErr     error
	CreateErr  error
	UpdateErr  error
	PublishErr error
	UploadErr  error
}

var (
	_ webflow.CMS           = (*FakeCMS)(nil)
	_ webflow.AssetUploader = (*FakeCMS)(nil)
)

func NewFakeCMS() *FakeCMS {
	return &FakeCMS{
		items:     map[string][]webflow.Item{},
		published: map[string]bool{},
	}
}

// Seed adds an item directly, optionally already published
func (f *FakeCMS) Seed(collectionID string, published bool, fields webflow.FieldData) webflow.Item {
	f.mu.Lock()
	defer f.mu.Unlock()

	item := f.newItemLocked(fields)
	f.items[collectionID] = append(f.items[collectionID], item)
	if published {
		f.published[item.ID] = true
	}
	return item
}

// Items returns a copy of every item in the collection
func (f *FakeCMS) Items(collectionID string) []webflow.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]webflow.Item(nil), f.items[collectionID]...)
}

func (f *FakeCMS) IsPublished(itemID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.published[itemID]
}

func (f *FakeCMS) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *FakeCMS) ListItems(_ context.Context, collectionID string, opts webflow.ListOptions) (*webflow.ItemList, error) {
	return f.list("ListItems", collectionID, opts, false)
}

func (f *FakeCMS) ListItemsLive(_ context.Context, collectionID string, opts webflow.ListOptions) (*webflow.ItemList, error) {
	return f.list("ListItemsLive", collectionID, opts, true)
}

func (f *FakeCMS) list(call, collectionID string, opts webflow.ListOptions, liveOnly bool) (*webflow.ItemList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	var all []webflow.Item
	for _, item := range f.items[collectionID] {
		if !liveOnly || f.published[item.ID] {
			all = append(all, item)
		}
	}

	limit := opts.Limit
	if limit <= 0 || limit > webflow.MaxPageSize {
		limit = webflow.MaxPageSize
	}
	start := opts.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	return &webflow.ItemList{
		Items:      append([]webflow.Item(nil), all[start:end]...),
		Pagination: webflow.Pagination{Limit: limit, Offset: opts.Offset, Total: len(all)},
	}, nil
}

func (f *FakeCMS) GetItem(_ context.Context, collectionID, itemID string) (*webflow.Item, error) {
	return f.get("GetItem", collectionID, itemID, false)
}

func (f *FakeCMS) GetItemLive(_ context.Context, collectionID, itemID string) (*webflow.Item, error) {
	return f.get("GetItemLive", collectionID, itemID, true)
}

func (f *FakeCMS) get(call, collectionID, itemID string, liveOnly bool) (*webflow.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	for _, item := range f.items[collectionID] {
		if item.ID == itemID && (!liveOnly || f.published[item.ID]) {
			cp := item
			return &cp, nil
		}
	}
	return nil, &webflow.APIError{StatusCode: http.StatusNotFound, Code: "resource_not_found", Message: "Requested resource not found"}
}

func (f *FakeCMS) CreateItem(_ context.Context, collectionID string, payload webflow.ItemPayload) (*webflow.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "CreateItem")
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	item := f.newItemLocked(payload.FieldData)
	if payload.IsArchived != nil {
		item.IsArchived = *payload.IsArchived
	}
	if payload.IsDraft != nil {
		item.IsDraft = *payload.IsDraft
	}
	f.items[collectionID] = append(f.items[collectionID], item)
	cp := item
	return &cp, nil
}

func (f *FakeCMS) UpdateItem(_ context.Context, collectionID, itemID string, payload webflow.ItemPayload) (*webflow.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "UpdateItem")
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}

	items := f.items[collectionID]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		for k, v := range payload.FieldData {
			items[i].FieldData[k] = v
		}
		if payload.IsArchived != nil {
			items[i].IsArchived = *payload.IsArchived
		}
		if payload.IsDraft != nil {
			items[i].IsDraft = *payload.IsDraft
		}
		now := time.Now().UTC()
		items[i].LastUpdated = &now
		cp := items[i]
		return &cp, nil
	}
	return nil, &webflow.APIError{StatusCode: http.StatusNotFound, Code: "resource_not_found", Message: "Requested resource not found"}
}

func (f *FakeCMS) PublishItems(_ context.Context, _ string, itemIDs ...string) (*webflow.PublishResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "PublishItems")
	if f.PublishErr != nil {
		return nil, f.PublishErr
	}

	for _, id := range itemIDs {
		f.published[id] = true
	}
	return &webflow.PublishResult{PublishedItemIDs: itemIDs}, nil
}

func (f *FakeCMS) UploadAsset(_ context.Context, siteID, fileName string, data []byte) (*webflow.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "UploadAsset")
	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	if siteID == "" {
		return nil, webflow.ErrMissingSiteID
	}

	f.Assets = append(f.Assets, UploadedAsset{SiteID: siteID, FileName: fileName, Data: data})
	id := fmt.Sprintf("asset-%d", len(f.Assets))
	return &webflow.Asset{ID: id, URL: fmt.Sprintf("https://assets.example.test/%s/%s", id, fileName)}, nil
}

func (f *FakeCMS) newItemLocked(fields webflow.FieldData) webflow.Item {
	f.nextID++
	data := webflow.FieldData{}
	for k, v := range fields {
		data[k] = v
	}
	now := time.Now().UTC()
	return webflow.Item{
		ID:          fmt.Sprintf("item-%d", f.nextID),
		CreatedOn:   &now,
		LastUpdated: &now,
		FieldData:   data,
	}
}
