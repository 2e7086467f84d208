package listing

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	accountrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/account"
	agentrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/agent"
	imagerepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/image"
	listingrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/listing"
	reviewrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/review"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	txrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/tx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
	validatorx "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/validator"
	"go.uber.org/zap"
)

// BlobStore keeps listing image bytes.
type BlobStore interface {
	Store(ctx context.Context, filename string, data []byte) (model.StoredBlob, error)
	Delete(ctx context.Context, key string) error
}

type ListingApp interface {
	Create(ctx context.Context, agentID uint64, req *model.ListingRequest, images []model.ImageUpload) (*model.ListingCreatedResponse, error)
	Update(ctx context.Context, agentID, listingID uint64, req *model.ListingRequest) (*model.ListingDetail, error)
	Delete(ctx context.Context, agentID, listingID uint64) error
	DeleteImage(ctx context.Context, agentID, listingID, imageID uint64) error
	Get(ctx context.Context, listingID uint64) (*model.ListingDetail, error)
	List(ctx context.Context, filter *model.ListingFilter) ([]model.ListingDetail, error)
	Search(ctx context.Context, query string) ([]model.ListingDetail, error)
	AddReview(ctx context.Context, accountID, listingID uint64, req *model.ReviewRequest) (*model.ReviewResponse, error)
	Reindex(ctx context.Context) (*model.ReindexResponse, error)
	Hydrate(ctx context.Context, listings []model.ListingEntity) ([]model.ListingDetail, error)
}

type listingAppImpl struct {
	txRepo      txrepo.TxRepository
	listingRepo listingrepo.ListingRepository
	imageRepo   imagerepo.ImageRepository
	reviewRepo  reviewrepo.ReviewRepository
	agentRepo   agentrepo.AgentRepository
	accountRepo accountrepo.AccountRepository
	blobs       BlobStore
}

func NewListingApp(
	txRepo txrepo.TxRepository,
	listingRepo listingrepo.ListingRepository,
	imageRepo imagerepo.ImageRepository,
	reviewRepo reviewrepo.ReviewRepository,
	agentRepo agentrepo.AgentRepository,
	accountRepo accountrepo.AccountRepository,
	blobs BlobStore,
) ListingApp {
	return &listingAppImpl{
		txRepo:      txRepo,
		listingRepo: listingRepo,
		imageRepo:   imageRepo,
		reviewRepo:  reviewRepo,
		agentRepo:   agentRepo,
		accountRepo: accountRepo,
		blobs:       blobs,
	}
}

// Create uploads the images, then writes the listing, its search vector
// and its image rows in one transaction. Uploaded blobs are removed again
// if the transaction fails.
func (s *listingAppImpl) Create(ctx context.Context, agentID uint64, req *model.ListingRequest, images []model.ImageUpload) (*model.ListingCreatedResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	stored := make([]model.StoredBlob, 0, len(images))
	committed := false
	defer func() {
		if !committed {
			s.deleteBlobs(ctx, "Create", blobKeys(stored))
		}
	}()

	for _, img := range images {
		blob, err := s.blobs.Store(ctx, img.Filename, img.Data)
		if err != nil {
			logger.Error("[Create] err blobs.Store", zap.String("filename", img.Filename), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		stored = append(stored, blob)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Create] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity := newListingEntity(agentID, req)
	listingID, err := s.listingRepo.CreateTx(ctx, tx, entity)
	if err != nil {
		if stderrors.Is(err, sqlerr.ErrForeignKey) {
			// the caller holds an agent role without an agent profile
			return nil, errors.SetCustomError(constant.ErrForbidden)
		}
		logger.Error("[Create] err listingRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for _, blob := range stored {
		_, err := s.imageRepo.CreateTx(ctx, tx, &model.ListingImageEntity{
			ListingID: listingID,
			BlobKey:   blob.Key,
			URL:       blob.URL,
		})
		if err != nil {
			logger.Error("[Create] err imageRepo.CreateTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.ListingCreatedResponse{ID: listingID, Images: len(stored)}, nil
}

// Update rewrites the listing and its search vector in the same statement.
func (s *listingAppImpl) Update(ctx context.Context, agentID, listingID uint64, req *model.ListingRequest) (*model.ListingDetail, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Update] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.listingRepo.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		logger.Error("[Update] err listingRepo.GetByIDTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if current.AgentID != agentID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	entity := newListingEntity(agentID, req)
	entity.ID = listingID
	if err := s.listingRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[Update] err listingRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.Get(ctx, listingID)
}

// Delete removes the listing (images, reviews and saves cascade) and then
// the image blobs.
func (s *listingAppImpl) Delete(ctx context.Context, agentID, listingID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Delete] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.listingRepo.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		logger.Error("[Delete] err listingRepo.GetByIDTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if current.AgentID != agentID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	images, err := s.imageRepo.ListByListingIDs(ctx, []uint64{listingID})
	if err != nil {
		logger.Error("[Delete] err imageRepo.ListByListingIDs", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.listingRepo.DeleteTx(ctx, tx, listingID); err != nil {
		logger.Error("[Delete] err listingRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	keys := make([]string, 0, len(images))
	for _, img := range images {
		keys = append(keys, img.BlobKey)
	}
	s.deleteBlobs(ctx, "Delete", keys)
	return nil
}

func (s *listingAppImpl) DeleteImage(ctx context.Context, agentID, listingID, imageID uint64) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		logger.Error("[DeleteImage] err imageRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if image == nil || image.ListingID != listingID {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[DeleteImage] err listingRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if listing.AgentID != agentID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		logger.Error("[DeleteImage] err imageRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.deleteBlobs(ctx, "DeleteImage", []string{image.BlobKey})
	return nil
}

func (s *listingAppImpl) Get(ctx context.Context, listingID uint64) (*model.ListingDetail, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[Get] err listingRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	details, err := s.Hydrate(ctx, []model.ListingEntity{*listing})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// List returns every listing, in id order, that passes filter. A nil
// filter returns all of them.
func (s *listingAppImpl) List(ctx context.Context, filter *model.ListingFilter) ([]model.ListingDetail, error) {
	listings, err := s.listingRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err listingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.Hydrate(ctx, ApplyFilter(listings, filter))
}

func (s *listingAppImpl) AddReview(ctx context.Context, accountID, listingID uint64, req *model.ReviewRequest) (*model.ReviewResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[AddReview] err listingRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	author, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[AddReview] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if author == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	review := &model.ReviewEntity{
		ListingID: listingID,
		AccountID: accountID,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.reviewRepo.Create(ctx, review); err != nil {
		if stderrors.Is(err, sqlerr.ErrForeignKey) {
			// listing deleted after the lookup
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[AddReview] err reviewRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ReviewResponse{
		User: model.ReviewAuthor{
			ID:        author.ID,
			Email:     author.Email,
			FirstName: author.FirstName,
			LastName:  author.LastName,
		},
		Message:   review.Message,
		CreatedAt: review.CreatedAt,
	}, nil
}

// Reindex recomputes every listing's search vector in one transaction.
func (s *listingAppImpl) Reindex(ctx context.Context) (*model.ReindexResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reindex] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	listings, err := s.listingRepo.ListTx(ctx, tx)
	if err != nil {
		logger.Error("[Reindex] err listingRepo.ListTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for _, l := range listings {
		vector := textsearch.Build(l.Name, l.Description)
		if err := s.listingRepo.UpdateSearchVectorTx(ctx, tx, l.ID, vector); err != nil {
			logger.Error("[Reindex] err listingRepo.UpdateSearchVectorTx", zap.Uint64("listing_id", l.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reindex] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[Reindex] search vectors rebuilt", zap.Int("listings", len(listings)))
	return &model.ReindexResponse{Reindexed: len(listings)}, nil
}

// Hydrate attaches agents, images and reviews to listings, keeping their order.
func (s *listingAppImpl) Hydrate(ctx context.Context, listings []model.ListingEntity) ([]model.ListingDetail, error) {
	details := make([]model.ListingDetail, 0, len(listings))
	if len(listings) == 0 {
		return details, nil
	}

	listingIDs := make([]uint64, 0, len(listings))
	agentIDs := make([]uint64, 0, len(listings))
	seenAgent := map[uint64]bool{}
	for _, l := range listings {
		listingIDs = append(listingIDs, l.ID)
		if !seenAgent[l.AgentID] {
			seenAgent[l.AgentID] = true
			agentIDs = append(agentIDs, l.AgentID)
		}
	}

	agents, err := s.agentRepo.ListByAccountIDs(ctx, agentIDs)
	if err != nil {
		logger.Error("[Hydrate] err agentRepo.ListByAccountIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	images, err := s.imageRepo.ListByListingIDs(ctx, listingIDs)
	if err != nil {
		logger.Error("[Hydrate] err imageRepo.ListByListingIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	reviews, err := s.reviewRepo.ListByListingIDs(ctx, listingIDs)
	if err != nil {
		logger.Error("[Hydrate] err reviewRepo.ListByListingIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	agentByID := make(map[uint64]*model.ListingAgent, len(agents))
	for _, a := range agents {
		agentByID[a.AccountID] = &model.ListingAgent{
			AccountID:   a.AccountID,
			DisplayName: a.DisplayName,
			PhoneNumber: a.PhoneNumber,
		}
	}
	imagesByListing := map[uint64][]model.ListingImageEntity{}
	for _, img := range images {
		imagesByListing[img.ListingID] = append(imagesByListing[img.ListingID], img)
	}
	reviewsByListing := map[uint64][]model.ReviewResponse{}
	for _, r := range reviews {
		reviewsByListing[r.ListingID] = append(reviewsByListing[r.ListingID], model.ReviewResponse{
			User: model.ReviewAuthor{
				ID:        r.AccountID,
				Email:     r.Email,
				FirstName: r.FirstName,
				LastName:  r.LastName,
			},
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}

	for _, l := range listings {
		d := model.ListingDetail{
			ListingEntity: l,
			Agent:         agentByID[l.AgentID],
			Images:        imagesByListing[l.ID],
			Reviews:       reviewsByListing[l.ID],
		}
		if d.Images == nil {
			d.Images = []model.ListingImageEntity{}
		}
		if d.Reviews == nil {
			d.Reviews = []model.ReviewResponse{}
		}
		details = append(details, d)
	}
	return details, nil
}

func newListingEntity(agentID uint64, req *model.ListingRequest) *model.ListingEntity {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	return &model.ListingEntity{
		AgentID:      agentID,
		Name:         name,
		Description:  description,
		Location:     strings.TrimSpace(req.Location),
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Lounges:      req.Lounges,
		IsNew:        req.IsNew,
		IsFurnished:  req.IsFurnished,
		SearchVector: textsearch.Build(name, description),
	}
}

// deleteBlobs removes blobs whose rows are gone. Failures only leave
// orphaned blobs behind, so they are logged and not returned.
func (s *listingAppImpl) deleteBlobs(ctx context.Context, op string, keys []string) {
	for _, key := range keys {
		if err := s.blobs.Delete(ctx, key); err != nil {
			logger.Warn("["+op+"] err blobs.Delete", zap.String("key", key), zap.String("error", err.Error()))
		}
	}
}

func blobKeys(blobs []model.StoredBlob) []string {
	keys := make([]string, 0, len(blobs))
	for _, b := range blobs {
		keys = append(keys, b.Key)
	}
	return keys
}
