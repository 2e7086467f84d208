package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
)

// ParseListingFilter reads price, bedrooms, bathrooms and is_furnished
// from query parameters. Empty values and "Any" leave a filter off; other
// keys are ignored.
func ParseListingFilter(values url.Values) (*model.ListingFilter, error) {
	filter := &model.ListingFilter{}

	if raw, ok := filterValue(values, "price"); ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.Price = &v
	}

	for key, dst := range map[string]**int{
		"bedrooms":  &filter.Bedrooms,
		"bathrooms": &filter.Bathrooms,
	} {
		raw, ok := filterValue(values, key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		*dst = &v
	}

	if raw, ok := filterValue(values, "is_furnished"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.IsFurnished = &v
	}

	return filter, nil
}

func filterValue(values url.Values, key string) (string, bool) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" || strings.EqualFold(raw, constant.FilterAny) {
		return "", false
	}
	return raw, true
}

// ApplyFilter keeps the listings that satisfy every active filter, in
// their original order.
func ApplyFilter(listings []model.ListingEntity, filter *model.ListingFilter) []model.ListingEntity {
	if filter.Empty() {
		return listings
	}
	out := make([]model.ListingEntity, 0, len(listings))
	for _, l := range listings {
		if matches(l, filter) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l model.ListingEntity, f *model.ListingFilter) bool {
	if f.Price != nil && !inBand(l.Price, *f.Price, constant.PriceBandThreshold) {
		return false
	}
	if f.Bedrooms != nil && !inBand(int64(l.Bedrooms), int64(*f.Bedrooms), constant.RoomBandThreshold) {
		return false
	}
	if f.Bathrooms != nil && !inBand(int64(l.Bathrooms), int64(*f.Bathrooms), constant.RoomBandThreshold) {
		return false
	}
	if f.IsFurnished != nil && l.IsFurnished != *f.IsFurnished {
		return false
	}
	return true
}

// inBand treats a wanted value above threshold as a minimum and any other
// value as a maximum.
func inBand(have, want, threshold int64) bool {
	if want > threshold {
		return have >= want
	}
	return have <= want
}
