package webflow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const MaxPageSize = 100

// FieldData là map field slug → value của một CMS item
type FieldData map[string]any

// Item là một CMS item
type Item struct {
	ID            string     `json:"id"`
	CmsLocaleID   string     `json:"cmsLocaleId,omitempty"`
	LastPublished *time.Time `json:"lastPublished,omitempty"`
	LastUpdated   *time.Time `json:"lastUpdated,omitempty"`
	CreatedOn     *time.Time `json:"createdOn,omitempty"`
	IsArchived    bool       `json:"isArchived"`
	IsDraft       bool       `json:"isDraft"`
	FieldData     FieldData  `json:"fieldData"`
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

type ItemList struct {
	Items      []Item     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ItemPayload là body của create/update item
type ItemPayload struct {
	IsArchived *bool     `json:"isArchived,omitempty"`
	IsDraft    *bool     `json:"isDraft,omitempty"`
	FieldData  FieldData `json:"fieldData"`
}

type ListOptions struct {
	Limit  int
	Offset int
}

type PublishResult struct {
	PublishedItemIDs []string        `json:"publishedItemIds"`
	Errors           json.RawMessage `json:"errors,omitempty"`
}

// ImageRef là giá trị của field kiểu Image trong fieldData
type ImageRef struct {
	FileID string `json:"fileId,omitempty"`
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
}

// CMS là phần Webflow API mà các domain service dùng
type CMS interface {
	ListItems(ctx context.Context, collectionID string, opts ListOptions) (*ItemList, error)
	ListItemsLive(ctx context.Context, collectionID string, opts ListOptions) (*ItemList, error)
	GetItem(ctx context.Context, collectionID, itemID string) (*Item, error)
	GetItemLive(ctx context.Context, collectionID, itemID string) (*Item, error)
	CreateItem(ctx context.Context, collectionID string, payload ItemPayload) (*Item, error)
	UpdateItem(ctx context.Context, collectionID, itemID string, payload ItemPayload) (*Item, error)
	PublishItems(ctx context.Context, collectionID string, itemIDs ...string) (*PublishResult, error)
}

var _ CMS = (*Client)(nil)

func (c *Client) ListItems(ctx context.Context, collectionID string, opts ListOptions) (*ItemList, error) {
	return c.listItems(ctx, collectionPath(collectionID)+"/items", opts)
}

// ListItemsLive chỉ trả về item đã publish
func (c *Client) ListItemsLive(ctx context.Context, collectionID string, opts ListOptions) (*ItemList, error) {
	return c.listItems(ctx, collectionPath(collectionID)+"/items/live", opts)
}

func (c *Client) listItems(ctx context.Context, path string, opts ListOptions) (*ItemList, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		limit := opts.Limit
		if limit > MaxPageSize {
			limit = MaxPageSize
		}
		q.Set("limit", strconv.Itoa(limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res ItemList
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetItem(ctx context.Context, collectionID, itemID string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, itemPath(collectionID, itemID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetItemLive(ctx context.Context, collectionID, itemID string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, itemPath(collectionID, itemID)+"/live", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem tạo item ở trạng thái staged; cần PublishItems để lên live site
func (c *Client) CreateItem(ctx context.Context, collectionID string, payload ItemPayload) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, collectionPath(collectionID)+"/items", payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, collectionID, itemID string, payload ItemPayload) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPatch, itemPath(collectionID, itemID), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) PublishItems(ctx context.Context, collectionID string, itemIDs ...string) (*PublishResult, error) {
	if len(itemIDs) == 0 {
		return &PublishResult{}, nil
	}
	body := map[string][]string{"itemIds": itemIDs}

	var res PublishResult
	if err := c.do(ctx, http.MethodPost, collectionPath(collectionID)+"/items/publish", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func collectionPath(collectionID string) string {
	return fmt.Sprintf("/collections/%s", url.PathEscape(collectionID))
}

func itemPath(collectionID, itemID string) string {
	return fmt.Sprintf("%s/items/%s", collectionPath(collectionID), url.PathEscape(itemID))
}

// Bool is a helper for the optional ItemPayload flags
func Bool(v bool) *bool {
	return &v
}
