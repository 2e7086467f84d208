package model

// ListingFilter holds the structured listing filters. A nil field is inactive.
type ListingFilter struct {
	Price       *int64
	Bedrooms    *int
	Bathrooms   *int
	IsFurnished *bool
}

func (f *ListingFilter) Empty() bool {
	return f == nil || (f.Price == nil && f.Bedrooms == nil && f.Bathrooms == nil && f.IsFurnished == nil)
}
