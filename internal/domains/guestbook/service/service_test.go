package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/domains/guestbook/model"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/infrastructure/webflow/webflowtest"
	"webflow-forms-backend/internal/shared/sequence"
)

var fixedNow = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

func newTestService(cms *webflowtest.FakeCMS) *guestbookService {
	svc := NewGuestbookService(cms, sequence.NewAllocator(cms), "gb", true).(*guestbookService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validRequest() model.SubmitRequest {
	return model.SubmitRequest{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		Location:     "Columbus, OH",
		FirstMet:     "College",
		Relationship: "Friend",
		Message:      "Miss you",
		CardColor:    "Ocean Teal",
	}
}

func TestSubmit_CreatesAndPublishes(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	cms.Seed("gb", true, webflow.FieldData{model.CMSGuestbookID: float64(41)})
	svc := newTestService(cms)

	res, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 42, res.GuestbookID)
	assert.Len(t, res.EditCode, 6)
	assert.True(t, res.Published)
	assert.False(t, res.Edited)
	assert.True(t, cms.IsPublished(res.ItemID))

	items := cms.Items("gb")
	require.Len(t, items, 2)
	data := items[1].FieldData
	assert.Equal(t, "Jane Doe", data[model.CMSName])
	assert.Equal(t, "jane-doe", data[model.CMSSlug])
	assert.Equal(t, "Jane Doe", data[model.CMSFirstName])
	assert.Equal(t, "jane@example.com", data[model.CMSEmail])
	assert.Equal(t, "College", data[model.CMSMemory])
	assert.Equal(t, "Friend", data[model.CMSRelationship])
	assert.Equal(t, "2025-06-01T12:30:00.000Z", data[model.CMSMemoryDate])
	assert.Equal(t, res.EditCode, data[model.CMSEditCode])
	assert.Equal(t, true, data[model.ColorOceanTeal])
	assert.Equal(t, false, data[model.ColorSlateBlue])
}

func TestSubmit_UsesFormCollectionID(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	svc := newTestService(cms)

	req := validRequest()
	req.CollectionID = "other"
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, cms.Items("other"), 1)
	assert.Empty(t, cms.Items("gb"))
}

func TestSubmit_PublishFailureStillSucceeds(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	cms.PublishErr = errors.New("publish down")
	svc := newTestService(cms)

	res, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, res.Published)
	assert.Len(t, cms.Items("gb"), 1)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.SubmitRequest)
	}{
		{"missing name", func(r *model.SubmitRequest) { r.FullName = "" }},
		{"missing email", func(r *model.SubmitRequest) { r.Email = "" }},
		{"invalid email", func(r *model.SubmitRequest) { r.Email = "not-an-email" }},
		{"invalid date", func(r *model.SubmitRequest) { r.DateAdded = "someday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cms := webflowtest.NewFakeCMS()
			svc := newTestService(cms)

			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Submit(context.Background(), req)

			var gbErr *model.GuestbookError
			require.ErrorAs(t, err, &gbErr)
			assert.Equal(t, model.ErrCodeValidation, gbErr.Code)
			assert.Zero(t, cms.CallCount("CreateItem"))
		})
	}
}

func TestSubmit_MissingToken(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	svc := NewGuestbookService(cms, sequence.NewAllocator(cms), "gb", false)

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, model.ErrMissingToken)
}

func TestSubmit_CreateFailure(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	cms.CreateErr = &webflow.APIError{StatusCode: 400, Code: "validation_error", Message: "bad field"}
	svc := newTestService(cms)

	_, err := svc.Submit(context.Background(), validRequest())

	var gbErr *model.GuestbookError
	require.ErrorAs(t, err, &gbErr)
	assert.Equal(t, model.ErrCodeCreateFailed, gbErr.Code)
	assert.Equal(t, 400, webflow.StatusCode(err))
}

func TestSubmit_EditWithMatchingCode(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	existing := cms.Seed("gb", true, webflow.FieldData{
		model.CMSName:        "Jane Doe",
		model.CMSGuestbookID: float64(7),
		model.CMSEditCode:    "AB12CD",
		model.CMSMessage:     "old",
		model.CMSLocation:    "Ohio",
	})
	svc := newTestService(cms)

	res, err := svc.Submit(context.Background(), model.SubmitRequest{
		ItemID:    existing.ID,
		EditCode:  "ab12cd",
		Message:   "new message",
		CardColor: "Rustwood Red",
	})
	require.NoError(t, err)

	assert.True(t, res.Edited)
	assert.Equal(t, 7, res.GuestbookID)
	assert.Empty(t, res.EditCode)

	data := cms.Items("gb")[0].FieldData
	assert.Equal(t, "new message", data[model.CMSMessage])
	assert.Equal(t, "Ohio", data[model.CMSLocation])
	assert.Equal(t, "Jane Doe", data[model.CMSName])
	assert.Equal(t, true, data[model.ColorRustwoodRed])
	assert.Equal(t, 1, cms.CallCount("PublishItems"))
}

func TestSubmit_EditRejectsWrongCode(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	existing := cms.Seed("gb", true, webflow.FieldData{model.CMSEditCode: "AB12CD"})
	svc := newTestService(cms)

	_, err := svc.Submit(context.Background(), model.SubmitRequest{ItemID: existing.ID, EditCode: "ZZZZZZ", Message: "x"})

	assert.ErrorIs(t, err, model.ErrEditCodeMismatch)
	assert.Zero(t, cms.CallCount("UpdateItem"))
}

func TestSubmit_EditUnknownItem(t *testing.T) {
	svc := newTestService(webflowtest.NewFakeCMS())

	_, err := svc.Submit(context.Background(), model.SubmitRequest{ItemID: "nope", EditCode: "AB12CD"})
	assert.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestEditCodeMatches(t *testing.T) {
	assert.True(t, editCodeMatches("AB12CD", " ab12cd "))
	assert.False(t, editCodeMatches("", ""))
	assert.False(t, editCodeMatches("AB12CD", "AB12C"))
}

func TestCount(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	for i := 0; i < 5; i++ {
		cms.Seed("gb", i < 3, webflow.FieldData{})
	}
	svc := newTestService(cms)

	res, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, fixedNow, res.Timestamp)
}

func TestCount_Error(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	cms.ListErr = errors.New("boom")
	svc := newTestService(cms)

	_, err := svc.Count(context.Background())

	var gbErr *model.GuestbookError
	require.ErrorAs(t, err, &gbErr)
	assert.Equal(t, model.ErrCodeCountFailed, gbErr.Code)
}

func TestStatus(t *testing.T) {
	svc := NewGuestbookService(webflowtest.NewFakeCMS(), nil, "", true)

	st := svc.Status()
	assert.True(t, st.HasToken)
	assert.Equal(t, model.DefaultCollectionID, st.CollectionID)
}
