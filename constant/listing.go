package constant

// Filter thresholds above which a value means "this and above" instead of "at most".
const (
	PriceBandThreshold = 1000000
	RoomBandThreshold  = 5
)

// FilterAny disables a filter when passed as its value.
const FilterAny = "Any"

const (
	ListingDescriptionMaxLen = 500
	ReviewMessageMaxLen      = 180
)
