package transport

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	accountapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/account"
	listingapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/listing"
	savedapp "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/saved"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/authz"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// ImageSource streams stored listing images.
type ImageSource interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type Options struct {
	InternalAPIKey string
	MaxUploadBytes int64
}

type RestHandler struct {
	AccountApp accountapp.AccountApp
	ListingApp listingapp.ListingApp
	SavedApp   savedapp.SavedApp
	Images     ImageSource
	opts       Options
}

func NewTransport(
	accountApp accountapp.AccountApp,
	listingApp listingapp.ListingApp,
	savedApp savedapp.SavedApp,
	images ImageSource,
	authorizer *authz.Authorizer,
	opts Options,
) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AccountApp: accountApp,
		ListingApp: listingApp,
		SavedApp:   savedApp,
		Images:     images,
		opts:       opts,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// accounts
	router.HandleFunc("/accounts/register", rh.RegisterCustomer).Methods(http.MethodPost)
	router.HandleFunc("/accounts/register/agent", rh.RegisterAgent).Methods(http.MethodPost)
	router.HandleFunc("/accounts/resend-confirmation", rh.ResendConfirmation).Methods(http.MethodPost)
	router.HandleFunc("/accounts/confirm", rh.ConfirmAccount).Methods(http.MethodPost)
	router.HandleFunc("/accounts/token", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/accounts/profile", rh.Profile).Methods(http.MethodGet)

	// listings
	router.HandleFunc("/listings", rh.ListListings).Methods(http.MethodGet)
	router.HandleFunc("/listings", rh.CreateListing).Methods(http.MethodPost)
	router.HandleFunc("/listings/search", rh.SearchListings).Methods(http.MethodGet)
	router.HandleFunc("/listings/saved", rh.ListSaved).Methods(http.MethodGet)
	router.HandleFunc("/listings/{id:[0-9]+}", rh.GetListing).Methods(http.MethodGet)
	router.HandleFunc("/listings/{id:[0-9]+}", rh.UpdateListing).Methods(http.MethodPut)
	router.HandleFunc("/listings/{id:[0-9]+}", rh.DeleteListing).Methods(http.MethodDelete)
	router.HandleFunc("/listings/{id:[0-9]+}/images/{imageID:[0-9]+}", rh.DeleteListingImage).Methods(http.MethodDelete)
	router.HandleFunc("/listings/{id:[0-9]+}/save", rh.SaveListing).Methods(http.MethodPost)
	router.HandleFunc("/listings/{id:[0-9]+}/unsave", rh.UnsaveListing).Methods(http.MethodPost)
	router.HandleFunc("/listings/{id:[0-9]+}/reviews", rh.AddReview).Methods(http.MethodPost)
	router.HandleFunc("/images/{key}", rh.DownloadImage).Methods(http.MethodGet)

	// internal routes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/listings/reindex", rh.ReindexListings).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(accountApp))
	router.Use(AuthzMiddleware(authorizer))

	return router
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	return id, nil
}
