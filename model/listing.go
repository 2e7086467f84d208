package model

import (
	"time"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
)

// ListingEntity represents the listing table entity. Likes is computed
// from saved_listing on read.
type ListingEntity struct {
	ID           uint64            `db:"id" json:"id"`
	AgentID      uint64            `db:"agent_id" json:"agent_id"`
	Name         string            `db:"name" json:"name"`
	Description  string            `db:"description" json:"description"`
	Location     string            `db:"location" json:"location"`
	Price        int64             `db:"price" json:"price"`
	Bedrooms     int               `db:"bedrooms" json:"bedrooms"`
	Bathrooms    int               `db:"bathrooms" json:"bathrooms"`
	Lounges      int               `db:"lounges" json:"lounges"`
	IsNew        bool              `db:"is_new" json:"is_new"`
	IsFurnished  bool              `db:"is_furnished" json:"is_furnished"`
	SearchVector textsearch.Vector `db:"search_vector" json:"-"`
	Likes        int64             `db:"likes" json:"no_of_likes"`
	CreatedAt    time.Time         `db:"created_at" json:"created_on"`
}

// ListingRequest is used for both create and update.
type ListingRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=150"`
	Description string `json:"description" validate:"required,notblank,max=500"`
	Location    string `json:"location" validate:"required,notblank,max=100"`
	Price       int64  `json:"price" validate:"gte=0"`
	Bedrooms    int    `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int    `json:"bathrooms" validate:"gte=0"`
	Lounges     int    `json:"lounges" validate:"gte=0"`
	IsNew       bool   `json:"is_new"`
	IsFurnished bool   `json:"is_furnished"`
}

// ImageUpload is one image attached to a create request.
type ImageUpload struct {
	Filename string
	Data     []byte
}

type ListingImageEntity struct {
	ID        uint64    `db:"id" json:"id"`
	ListingID uint64    `db:"listing_id" json:"-"`
	BlobKey   string    `db:"blob_key" json:"-"`
	URL       string    `db:"url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}

type ReviewEntity struct {
	ID        uint64    `db:"id" json:"-"`
	ListingID uint64    `db:"listing_id" json:"-"`
	AccountID uint64    `db:"account_id" json:"-"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}

// ReviewDetail is a review joined with its author.
type ReviewDetail struct {
	ReviewEntity
	FirstName string `db:"first_name" json:"-"`
	LastName  string `db:"last_name" json:"-"`
	Email     string `db:"email" json:"-"`
}

type ReviewRequest struct {
	Message string `json:"message" validate:"required,notblank,max=180"`
}

type ReviewResponse struct {
	User      ReviewAuthor `json:"user"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"timestamp"`
}

type ReviewAuthor struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ListingAgent struct {
	AccountID   uint64 `json:"id"`
	DisplayName string `json:"display_name"`
	PhoneNumber string `json:"phone_number"`
}

// ListingDetail is the hydrated listing returned to clients.
type ListingDetail struct {
	ListingEntity
	Agent   *ListingAgent        `json:"agent,omitempty"`
	Images  []ListingImageEntity `json:"listing_images"`
	Reviews []ReviewResponse     `json:"reviews"`
}

type ListingCreatedResponse struct {
	ID     uint64 `json:"id"`
	Images int    `json:"images"`
}

type ReindexResponse struct {
	Reindexed int `json:"reindexed"`
}

// StoredBlob is the blob store's handle for an uploaded image.
type StoredBlob struct {
	Key string
	URL string
}
