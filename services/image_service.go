package services

import (
	"RealEstateAPI/config/environment"
	"RealEstateAPI/models"
	"RealEstateAPI/utils"
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	// MaxImageSize is the per-file upload ceiling (5MB).
	MaxImageSize = 5 * 1024 * 1024

	// MinListingImages and MaxListingImages bound how many images a
	// listing carries. The count is checked before any upload starts.
	MinListingImages = 1
	MaxListingImages = 4

	listingImageFolder = "real_estate_listings"
)

// assetUploader is the slice of the Cloudinary upload API this service
// depends on; *uploader.API satisfies it.
type assetUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, destroyParams uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// ImageService externalizes binary images to the asset host and keeps
// only the public id + URL reference locally.
type ImageService struct {
	Uploader assetUploader
}

// NewImageService initializes the Cloudinary client from environment
func NewImageService() *ImageService {
	cld, err := cloudinary.NewFromParams(
		environment.GetCloudinaryCloudName(),
		environment.GetCloudinaryAPIKey(),
		environment.GetCloudinaryAPISecret(),
	)
	if err != nil {
		log.Fatalf("Failed to configure Cloudinary: %v", err)
	}
	return &ImageService{Uploader: &cld.Upload}
}

// Validate rejects a file before any bytes are transmitted
func (s *ImageService) Validate(fileHeader *multipart.FileHeader) error {
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return utils.NewCustomError(http.StatusBadRequest, "Only image files are allowed!")
	}
	if fileHeader.Size > MaxImageSize {
		return utils.NewCustomError(http.StatusBadRequest, "Each image must be smaller than 5MB")
	}
	return nil
}

// Upload externalizes a single image and returns its reference
func (s *ImageService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (models.ListingImage, error) {
	if err := s.Validate(fileHeader); err != nil {
		return models.ListingImage{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("file", fileHeader.Filename).Msg("Error opening uploaded file")
		return models.ListingImage{}, utils.NewCustomError(http.StatusInternalServerError, "Failed to read uploaded image")
	}
	defer file.Close()

	result, err := s.Uploader.Upload(ctx, file, uploader.UploadParams{
		Folder: listingImageFolder,
	})
	if err != nil {
		logger.Error().Err(err).Str("file", fileHeader.Filename).Msg("Error uploading image")
		return models.ListingImage{}, utils.NewCustomError(http.StatusInternalServerError, "Failed to upload image")
	}

	return models.ListingImage{
		PublicID: result.PublicID,
		URL:      result.SecureURL,
	}, nil
}

// UploadBatch uploads images sequentially. If any upload fails the
// ones already stored are destroyed before the error is returned, so a
// listing is never committed with a partial image set.
func (s *ImageService) UploadBatch(ctx context.Context, fileHeaders []*multipart.FileHeader) ([]models.ListingImage, error) {
	var uploaded []models.ListingImage
	for _, fileHeader := range fileHeaders {
		image, err := s.Upload(ctx, fileHeader)
		if err != nil {
			s.DeleteAll(ctx, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, image)
	}
	return uploaded, nil
}

// Delete removes an externalized asset by its public id
func (s *ImageService) Delete(ctx context.Context, publicID string) error {
	_, err := s.Uploader.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete image")
	}
	return nil
}

// DeleteAll destroys a set of references, logging failures instead of
// propagating them. The local record is the source of truth for what
// the user sees; a stranded asset is recoverable out of band.
func (s *ImageService) DeleteAll(ctx context.Context, images []models.ListingImage) {
	for _, image := range images {
		if err := s.Delete(ctx, image.PublicID); err != nil {
			logger.Error().Err(err).Str("publicId", image.PublicID).Msg("Failed to delete externalized image")
		}
	}
}
