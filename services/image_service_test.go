package services

import (
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader stands in for the Cloudinary upload API. failAfter
// makes the n-th upload (1-based) fail, 0 never fails.
type fakeUploader struct {
	failAfter  int
	uploads    int
	destroyed  []string
	destroyErr error
}

func (f *fakeUploader) Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploads++
	if f.failAfter > 0 && f.uploads >= f.failAfter {
		return nil, errors.New("asset host rejected upload")
	}
	id := fmt.Sprintf("%s/img-%d", uploadParams.Folder, f.uploads)
	return &uploader.UploadResult{
		PublicID:  id,
		SecureURL: "https://res.example.com/" + id,
	}, nil
}

func (f *fakeUploader) Destroy(ctx context.Context, destroyParams uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = append(f.destroyed, destroyParams.PublicID)
	if f.destroyErr != nil {
		return nil, f.destroyErr
	}
	return &uploader.DestroyResult{Result: "ok"}, nil
}

// openableFileHeaders builds file headers backed by real multipart
// content, so fileHeader.Open() works inside the service.
func openableFileHeaders(t *testing.T, count int) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for i := 0; i < count; i++ {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="photo-%d.png"`, i))
		header.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake png bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["images"]
}

func imageFileHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "photo.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
		Size:     size,
	}
}

func TestImageService_ValidateAcceptsImage(t *testing.T) {
	svc := &ImageService{}

	err := svc.Validate(imageFileHeader("image/png", 1024))
	assert.NoError(t, err)
}

func TestImageService_ValidateRejectsNonImage(t *testing.T) {
	svc := &ImageService{}

	err := svc.Validate(imageFileHeader("application/pdf", 1024))
	require.Error(t, err)

	customErr, ok := err.(*utils.CustomError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "Only image files are allowed!", customErr.Message)
}

func TestImageService_ValidateRejectsOversized(t *testing.T) {
	svc := &ImageService{}

	err := svc.Validate(imageFileHeader("image/jpeg", MaxImageSize+1))
	require.Error(t, err)

	customErr, ok := err.(*utils.CustomError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
}

func TestCheckImageCount(t *testing.T) {
	// Zero images fails only where images are mandatory
	err := CheckImageCount(0, true)
	require.Error(t, err)
	assert.Equal(t, "At least one image is required for a listing.", err.(*utils.CustomError).Message)
	assert.NoError(t, CheckImageCount(0, false))

	for count := MinListingImages; count <= MaxListingImages; count++ {
		assert.NoError(t, CheckImageCount(count, true))
	}

	// Above the ceiling fails before any upload would start
	err = CheckImageCount(MaxListingImages+1, true)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*utils.CustomError).StatusCode)

	err = CheckImageCount(MaxListingImages+1, false)
	assert.Error(t, err)
}

func TestImageService_UploadReturnsReference(t *testing.T) {
	fake := &fakeUploader{}
	svc := &ImageService{Uploader: fake}

	files := openableFileHeaders(t, 1)
	image, err := svc.Upload(context.Background(), files[0])
	require.NoError(t, err)

	assert.Equal(t, "real_estate_listings/img-1", image.PublicID)
	assert.Equal(t, "https://res.example.com/real_estate_listings/img-1", image.URL)
}

func TestImageService_UploadBatchAllSucceed(t *testing.T) {
	fake := &fakeUploader{}
	svc := &ImageService{Uploader: fake}

	images, err := svc.UploadBatch(context.Background(), openableFileHeaders(t, 3))
	require.NoError(t, err)

	assert.Len(t, images, 3)
	assert.Empty(t, fake.destroyed)
}

func TestImageService_UploadBatchRollsBackOnMidBatchFailure(t *testing.T) {
	fake := &fakeUploader{failAfter: 3}
	svc := &ImageService{Uploader: fake}

	images, err := svc.UploadBatch(context.Background(), openableFileHeaders(t, 4))
	require.Error(t, err)
	assert.Nil(t, images)

	// The two assets stored before the failure are destroyed again
	assert.Equal(t, []string{
		"real_estate_listings/img-1",
		"real_estate_listings/img-2",
	}, fake.destroyed)
}

func TestImageService_DeleteAllAttemptsEveryAsset(t *testing.T) {
	fake := &fakeUploader{destroyErr: errors.New("asset host down")}
	svc := &ImageService{Uploader: fake}

	svc.DeleteAll(context.Background(), []models.ListingImage{
		{PublicID: "real_estate_listings/img-1"},
		{PublicID: "real_estate_listings/img-2"},
	})

	// Failures are swallowed and every asset is still attempted
	assert.Equal(t, []string{
		"real_estate_listings/img-1",
		"real_estate_listings/img-2",
	}, fake.destroyed)
}
