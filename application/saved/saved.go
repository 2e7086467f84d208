package saved

import (
	"context"
	stderrors "errors"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	savedrepo "github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/saved"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"go.uber.org/zap"
)

// ListingHydrator expands listing rows into the client representation.
type ListingHydrator interface {
	Hydrate(ctx context.Context, listings []model.ListingEntity) ([]model.ListingDetail, error)
}

type SavedApp interface {
	Save(ctx context.Context, accountID, listingID uint64) error
	Unsave(ctx context.Context, accountID, listingID uint64) error
	ListSaved(ctx context.Context, accountID uint64) ([]model.ListingDetail, error)
}

type savedAppImpl struct {
	savedRepo savedrepo.SavedRepository
	listings  ListingHydrator
}

func NewSavedApp(savedRepo savedrepo.SavedRepository, listings ListingHydrator) SavedApp {
	return &savedAppImpl{savedRepo: savedRepo, listings: listings}
}

// Save adds the listing to the account's saved set. The primary key on
// (account_id, listing_id) decides between concurrent saves, so there is
// no read before the insert.
func (s *savedAppImpl) Save(ctx context.Context, accountID, listingID uint64) error {
	err := s.savedRepo.Insert(ctx, accountID, listingID)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, sqlerr.ErrDuplicate):
		return errors.SetCustomError(constant.ErrAlreadySaved)
	case stderrors.Is(err, sqlerr.ErrForeignKey):
		return errors.SetCustomError(constant.ErrNotFound)
	default:
		logger.Error("[Save] err savedRepo.Insert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
}

// Unsave removes the listing from the account's saved set. A listing that
// does not exist is ErrNotFound, as in Save.
func (s *savedAppImpl) Unsave(ctx context.Context, accountID, listingID uint64) error {
	removed, err := s.savedRepo.Delete(ctx, accountID, listingID)
	if err != nil {
		logger.Error("[Unsave] err savedRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if removed {
		return nil
	}

	exists, err := s.savedRepo.ListingExists(ctx, listingID)
	if err != nil {
		logger.Error("[Unsave] err savedRepo.ListingExists", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return errors.SetCustomError(constant.ErrNotSaved)
}

// ListSaved returns the saved listings in the order they were saved.
func (s *savedAppImpl) ListSaved(ctx context.Context, accountID uint64) ([]model.ListingDetail, error) {
	listings, err := s.savedRepo.ListListings(ctx, accountID)
	if err != nil {
		logger.Error("[ListSaved] err savedRepo.ListListings", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.listings.Hydrate(ctx, listings)
}
