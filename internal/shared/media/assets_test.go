package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/infrastructure/storage"
	"webflow-forms-backend/internal/infrastructure/webflow"
	"webflow-forms-backend/internal/infrastructure/webflow/webflowtest"
	"webflow-forms-backend/internal/shared/form"
)

func noisyPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	rnd := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAssetAttacher_UploadRaw(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	a := NewAssetAttacher(cms, "site1", nil)

	ref, err := a.Upload(context.Background(), &form.File{FieldName: "photo", FileName: "beach.png", Data: []byte("raw")}, "")
	require.NoError(t, err)

	assert.Equal(t, "beach.png", ref.Alt)
	assert.Equal(t, "asset-1", ref.FileID)
	require.Len(t, cms.Assets, 1)
	assert.Equal(t, "site1", cms.Assets[0].SiteID)
	assert.Equal(t, []byte("raw"), cms.Assets[0].Data)
}

func TestAssetAttacher_CompressesLargeImages(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	data := noisyPNG(t, 400, 300)
	a := NewAssetAttacher(cms, "site1", storage.NewImageProcessor(0, 50*1024, 200))

	ref, err := a.Upload(context.Background(), &form.File{FieldName: "photo", FileName: "big.png", Data: data}, "Big")
	require.NoError(t, err)

	assert.Equal(t, "Big", ref.Alt)
	require.Len(t, cms.Assets, 1)
	assert.Equal(t, "big.jpg", cms.Assets[0].FileName)
	assert.Less(t, len(cms.Assets[0].Data), len(data))
}

func TestAssetAttacher_CompressesPhoneSizedPhoto(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	data := noisyPNG(t, 1000, 700)
	require.Greater(t, len(data), 1536*1024)

	// cùng giới hạn với file kèm form (UPLOAD_FORM_MAX_BYTES)
	a := NewAssetAttacher(cms, "site1", storage.NewImageProcessor(10<<20, 1024*1024, 1920))

	_, err := a.Upload(context.Background(), &form.File{FieldName: "photo", FileName: "phone.png", Data: data}, "")
	require.NoError(t, err)

	require.Len(t, cms.Assets, 1)
	assert.Equal(t, "phone.jpg", cms.Assets[0].FileName)
	assert.Less(t, len(cms.Assets[0].Data), len(data))
}

func TestAssetAttacher_Errors(t *testing.T) {
	cms := webflowtest.NewFakeCMS()
	a := NewAssetAttacher(cms, "site1", nil)

	_, err := a.Upload(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrNoImage)

	cms.UploadErr = &webflow.APIError{StatusCode: 403, Message: "denied"}
	_, err = a.Upload(context.Background(), &form.File{FieldName: "photo", FileName: "a.png", Data: []byte("x")}, "")
	assert.Equal(t, 403, webflow.StatusCode(err))

	cms.UploadErr = nil
	_, err = NewAssetAttacher(cms, "", nil).Upload(context.Background(), &form.File{FileName: "a.png", Data: []byte("x")}, "")
	assert.True(t, errors.Is(err, webflow.ErrMissingSiteID))
}

func TestStagedRefAndJPEGName(t *testing.T) {
	assert.Nil(t, StagedRef("", "x"))
	assert.Equal(t, &webflow.ImageRef{URL: "https://pub.r2.dev/a.jpg", Alt: "A"}, StagedRef("https://pub.r2.dev/a.jpg", "A"))
	assert.Equal(t, "photo.jpg", JPEGName("photo.heic"))
	assert.Equal(t, "image.jpg", JPEGName(".png"))
}
