package listing_test

import (
	"context"
	"errors"
	"testing"

	applisting "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/listing"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	cerr "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listingRow(id uint64, name, description string) model.ListingEntity {
	return model.ListingEntity{
		ID:           id,
		AgentID:      100,
		Name:         name,
		Description:  description,
		SearchVector: textsearch.Build(name, description),
	}
}

func TestRankListings(t *testing.T) {
	candidates := []model.ListingEntity{
		listingRow(1, "Luxury Studio", "Two bedroom guest annex with a studio"),
		listingRow(2, "Two Bedroom Flat", "Close to the market"),
		listingRow(3, "Quiet Cottage", "A cottage by the lake"),
	}

	got := applisting.RankListings(textsearch.ParseQuery("two bedroom"), candidates)

	assert.Equal(t, []uint64{2, 1}, ids(got), "name match ranks first and the non-match is dropped")
}

func TestRankListings_DescriptionRoundTrip(t *testing.T) {
	before := listingRow(1, "Garden Flat", "Near the old railway station")
	after := listingRow(1, "Garden Flat", "Overlooks the new marina")

	assert.Len(t, applisting.RankListings(textsearch.ParseQuery("railway"), []model.ListingEntity{before}), 1)
	assert.Empty(t, applisting.RankListings(textsearch.ParseQuery("railway"), []model.ListingEntity{after}))
	assert.Len(t, applisting.RankListings(textsearch.ParseQuery("marina"), []model.ListingEntity{after}), 1)
}

func TestListingApp_Search(t *testing.T) {
	t.Run("blank query touches nothing", func(t *testing.T) {
		f := newFields(t)
		got, err := f.app().Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("stop words only touches nothing", func(t *testing.T) {
		f := newFields(t)
		got, err := f.app().Search(context.Background(), "the and of")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ranked and hydrated", func(t *testing.T) {
		f := newFields(t)
		studio := listingRow(1, "Luxury Studio", "Two bedroom guest annex")
		flat := listingRow(2, "Two Bedroom Flat", "Close to the market")
		f.listingRepo.On("FindByLexemes", mock.Anything, []string{"two", "bedroom"}).
			Return([]model.ListingEntity{studio, flat}, nil).Once()
		f.expectHydrate([]uint64{2, 1})

		got, err := f.app().Search(context.Background(), "Two bedrooms")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, uint64(2), got[0].ID)
		assert.Equal(t, uint64(1), got[1].ID)
		assert.Equal(t, "Acme Homes", got[0].Agent.DisplayName)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFields(t)
		f.listingRepo.On("FindByLexemes", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := f.app().Search(context.Background(), "flat")
		assert.True(t, cerr.IsType(err, constant.ErrInternal))
	})
}
