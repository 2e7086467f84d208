package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	listingapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/listing"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/thirdparty/gridfs"
	utilsContext "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/context"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"go.uber.org/zap"
)

// ListListings handler
// @Summary List listings
// @Description Lists every listing, optionally narrowed by price, bedrooms, bathrooms and is_furnished. "Any" disables a filter.
// @Tags Listings
// @Produce json
// @Param price query string false "price; above 1000000 means at least, otherwise at most"
// @Param bedrooms query string false "bedrooms; above 5 means at least, otherwise at most"
// @Param bathrooms query string false "bathrooms; above 5 means at least, otherwise at most"
// @Param is_furnished query string false "true or false"
// @Success 200 {object} Response{data=[]model.ListingDetail}
// @Failure 400 {object} Response
// @Router /listings [get]
func (s *RestHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	filter, err := listingapp.ParseListingFilter(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SearchListings handler
// @Summary Search listings
// @Tags Listings
// @Produce json
// @Param q query string true "search text"
// @Success 200 {object} Response{data=[]model.ListingDetail}
// @Router /listings/search [get]
func (s *RestHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetListing handler
// @Summary Get a listing
// @Tags Listings
// @Produce json
// @Param id path int true "listing id"
// @Success 200 {object} Response{data=model.ListingDetail}
// @Failure 404 {object} Response
// @Router /listings/{id} [get]
func (s *RestHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateListing handler
// @Summary Create a listing
// @Description Multipart form with the listing fields and any number of "file" parts holding images
// @Tags Listings
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "name"
// @Param description formData string true "description"
// @Param location formData string true "location"
// @Param price formData int true "price"
// @Param bedrooms formData int false "bedrooms"
// @Param bathrooms formData int false "bathrooms"
// @Param lounges formData int false "lounges"
// @Param is_new formData bool false "is new"
// @Param is_furnished formData bool false "is furnished"
// @Param file formData file false "image"
// @Success 201 {object} Response{data=model.ListingCreatedResponse}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /listings [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	agentID, _ := utilsContext.GetUserID(r.Context())

	if s.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req, err := listingRequestFromForm(r.MultipartForm)
	if err != nil {
		writeError(w, err)
		return
	}
	images, err := imagesFromForm(r.MultipartForm)
	if err != nil {
		logger.Warn("[CreateListing] read image parts", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.Create(r.Context(), agentID, req, images)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, res)
}

// UpdateListing handler
// @Summary Update a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "listing id"
// @Param request body model.ListingRequest true "Listing"
// @Success 200 {object} Response{data=model.ListingDetail}
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /listings/{id} [put]
func (s *RestHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	agentID, _ := utilsContext.GetUserID(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.Update(r.Context(), agentID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteListing handler
// @Summary Delete a listing and its images
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "listing id"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /listings/{id} [delete]
func (s *RestHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	agentID, _ := utilsContext.GetUserID(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ListingApp.Delete(r.Context(), agentID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// DeleteListingImage handler
// @Summary Delete one image of a listing
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "listing id"
// @Param imageID path int true "image id"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /listings/{id}/images/{imageID} [delete]
func (s *RestHandler) DeleteListingImage(w http.ResponseWriter, r *http.Request) {
	agentID, _ := utilsContext.GetUserID(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	imageID, err := pathID(r, "imageID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ListingApp.DeleteImage(r.Context(), agentID, id, imageID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListSaved handler
// @Summary Listings saved by the caller
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]model.ListingDetail}
// @Router /listings/saved [get]
func (s *RestHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.SavedApp.ListSaved(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SaveListing handler
// @Summary Save a listing
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path int true "listing id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /listings/{id}/save [post]
func (s *RestHandler) SaveListing(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetUserID(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.SavedApp.Save(r.Context(), accountID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UnsaveListing handler
// @Summary Remove a listing from the saved set
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path int true "listing id"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /listings/{id}/unsave [post]
func (s *RestHandler) UnsaveListing(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetUserID(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.SavedApp.Unsave(r.Context(), accountID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// AddReview handler
// @Summary Review a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "listing id"
// @Param request body model.ReviewRequest true "Review"
// @Success 201 {object} Response{data=model.ReviewResponse}
// @Failure 404 {object} Response
// @Router /listings/{id}/reviews [post]
func (s *RestHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetUserID(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.AddReview(r.Context(), accountID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, res)
}

// DownloadImage handler
// @Summary Download a listing image
// @Tags Images
// @Produce octet-stream
// @Param key path string true "image key"
// @Success 200 {file} file
// @Failure 404 {object} Response
// @Router /images/{key} [get]
func (s *RestHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := s.Images.Open(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		if stderrors.Is(err, gridfs.ErrNotFound) {
			writeError(w, errors.SetCustomError(constant.ErrNotFound))
			return
		}
		logger.Error("[DownloadImage] err Images.Open", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := io.Copy(w, body); err != nil {
		logger.Warn("[DownloadImage] copy", zap.String("error", err.Error()))
	}
}

// ReindexListings handler
// @Summary Rebuild every listing's search vector
// @Tags Internal
// @Produce json
// @Param Authorization header string true "Bearer <internal api key>"
// @Success 200 {object} Response{data=model.ReindexResponse}
// @Router /internal/v1/listings/reindex [post]
func (s *RestHandler) ReindexListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.Reindex(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func listingRequestFromForm(form *multipart.Form) (*model.ListingRequest, error) {
	get := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}
	invalid := errors.SetCustomError(constant.ErrInvalidRequest)

	req := &model.ListingRequest{
		Name:        get("name"),
		Description: get("description"),
		Location:    get("location"),
	}

	var err error
	if req.Price, err = strconv.ParseInt(get("price"), 10, 64); err != nil {
		return nil, invalid
	}
	for key, dst := range map[string]*int{
		"bedrooms":  &req.Bedrooms,
		"bathrooms": &req.Bathrooms,
		"lounges":   &req.Lounges,
	} {
		raw := get(key)
		if raw == "" {
			continue
		}
		if *dst, err = strconv.Atoi(raw); err != nil {
			return nil, invalid
		}
	}
	for key, dst := range map[string]*bool{
		"is_new":       &req.IsNew,
		"is_furnished": &req.IsFurnished,
	} {
		raw := get(key)
		if raw == "" {
			continue
		}
		if *dst, err = strconv.ParseBool(raw); err != nil {
			return nil, invalid
		}
	}
	return req, nil
}

func imagesFromForm(form *multipart.Form) ([]model.ImageUpload, error) {
	headers := form.File["file"]
	images := make([]model.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, model.ImageUpload{Filename: fh.Filename, Data: data})
	}
	return images, nil
}
