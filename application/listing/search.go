package listing

import (
	"context"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
	"go.uber.org/zap"
)

// Search returns the listings matching every lexeme of query, best first.
// A blank query, or one made only of stop words, matches nothing.
func (s *listingAppImpl) Search(ctx context.Context, query string) ([]model.ListingDetail, error) {
	q := textsearch.ParseQuery(query)
	if q.Empty() {
		return []model.ListingDetail{}, nil
	}

	candidates, err := s.listingRepo.FindByLexemes(ctx, q.Lexemes)
	if err != nil {
		logger.Error("[Search] err listingRepo.FindByLexemes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.Hydrate(ctx, RankListings(q, candidates))
}

// RankListings orders candidates by relevance plus name similarity and
// drops those with no relevance.
func RankListings(q textsearch.Query, candidates []model.ListingEntity) []model.ListingEntity {
	docs := make([]textsearch.Document, 0, len(candidates))
	byID := make(map[uint64]model.ListingEntity, len(candidates))
	for _, l := range candidates {
		docs = append(docs, textsearch.Document{ID: l.ID, Name: l.Name, Vector: l.SearchVector})
		byID[l.ID] = l
	}

	results := textsearch.Rank(q, docs)
	ranked := make([]model.ListingEntity, 0, len(results))
	for _, r := range results {
		ranked = append(ranked, byID[r.ID])
	}
	return ranked
}
