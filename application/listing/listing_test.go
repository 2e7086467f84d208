package listing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	applisting "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/listing"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	blobmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/application/listing"
	accountmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/account"
	agentmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/agent"
	imagemocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/image"
	listingmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/listing"
	reviewmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/review"
	txmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/tx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	cerr "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo      *txmocks.TxRepository
	listingRepo *listingmocks.ListingRepository
	imageRepo   *imagemocks.ImageRepository
	reviewRepo  *reviewmocks.ReviewRepository
	agentRepo   *agentmocks.AgentRepository
	accountRepo *accountmocks.AccountRepository
	blobs       *blobmocks.BlobStore
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		listingRepo: listingmocks.NewListingRepository(t),
		imageRepo:   imagemocks.NewImageRepository(t),
		reviewRepo:  reviewmocks.NewReviewRepository(t),
		agentRepo:   agentmocks.NewAgentRepository(t),
		accountRepo: accountmocks.NewAccountRepository(t),
		blobs:       blobmocks.NewBlobStore(t),
	}
}

func (f fields) app() applisting.ListingApp {
	return applisting.NewListingApp(f.txRepo, f.listingRepo, f.imageRepo, f.reviewRepo, f.agentRepo, f.accountRepo, f.blobs)
}

// expectHydrate sets up the lookups made when listings owned by agent 100
// are expanded, in the given order.
func (f fields) expectHydrate(listingIDs []uint64) {
	f.agentRepo.On("ListByAccountIDs", mock.Anything, []uint64{100}).
		Return([]model.AgentEntity{{AccountID: 100, DisplayName: "Acme Homes", PhoneNumber: "08011112222"}}, nil).Once()
	f.imageRepo.On("ListByListingIDs", mock.Anything, listingIDs).Return([]model.ListingImageEntity{}, nil).Once()
	f.reviewRepo.On("ListByListingIDs", mock.Anything, listingIDs).Return([]model.ReviewDetail{}, nil).Once()
}

func validListingRequest() *model.ListingRequest {
	return &model.ListingRequest{
		Name:        "Two Bedroom Flat",
		Description: "Bright flat near the marina",
		Location:    "Lekki",
		Price:       450000,
		Bedrooms:    2,
		Bathrooms:   2,
		Lounges:     1,
		IsFurnished: true,
	}
}

func TestListingApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ListingRequest
		images   []model.ImageUpload
		mockCall func(f fields)
		want     *model.ListingCreatedResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: listing, vector and images written together",
			req:    validListingRequest(),
			images: []model.ImageUpload{{Filename: "front.jpg", Data: []byte("jpeg")}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.blobs.On("Store", mock.Anything, "front.jpg", []byte("jpeg")).
					Return(model.StoredBlob{Key: "k1", URL: "http://cdn/images/k1"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.listingRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(l *model.ListingEntity) bool {
					return l.AgentID == 100 &&
						l.SearchVector["flat"] == textsearch.Position{A: 1, B: 1} &&
						l.SearchVector["marina"] == textsearch.Position{B: 1}
				})).Return(uint64(31), nil).Once()
				f.imageRepo.On("CreateTx", mock.Anything, tx, &model.ListingImageEntity{
					ListingID: 31, BlobKey: "k1", URL: "http://cdn/images/k1",
				}).Return(uint64(1), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ListingCreatedResponse{ID: 31, Images: 1},
		},
		{
			name: "error: description too long",
			req: func() *model.ListingRequest {
				r := validListingRequest()
				r.Description = string(make([]byte, 501))
				return r
			}(),
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:   "error: failed insert removes uploaded blobs",
			req:    validListingRequest(),
			images: []model.ImageUpload{{Filename: "a.png", Data: []byte("a")}, {Filename: "b.png", Data: []byte("b")}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.blobs.On("Store", mock.Anything, "a.png", mock.Anything).Return(model.StoredBlob{Key: "ka"}, nil).Once()
				f.blobs.On("Store", mock.Anything, "b.png", mock.Anything).Return(model.StoredBlob{Key: "kb"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.listingRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.blobs.On("Delete", mock.Anything, "ka").Return(nil).Once()
				f.blobs.On("Delete", mock.Anything, "kb").Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: blob store failure",
			req:    validListingRequest(),
			images: []model.ImageUpload{{Filename: "a.png", Data: []byte("a")}},
			mockCall: func(f fields) {
				f.blobs.On("Store", mock.Anything, "a.png", mock.Anything).Return(model.StoredBlob{}, errors.New("gridfs down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Create(context.Background(), 100, tt.req, tt.images)
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingApp_Update(t *testing.T) {
	tests := []struct {
		name     string
		agentID  uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success: vector recomputed in the same update",
			agentID: 100,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.listingRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).
					Return(&model.ListingEntity{ID: 5, AgentID: 100, Name: "Old", Description: "railway"}, nil).Once()
				f.listingRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(l *model.ListingEntity) bool {
					_, stale := l.SearchVector["railway"]
					return l.ID == 5 && !stale && l.SearchVector["marina"].B == 1
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.listingRepo.On("GetByID", mock.Anything, uint64(5)).
					Return(&model.ListingEntity{ID: 5, AgentID: 100, Name: "Two Bedroom Flat"}, nil).Once()
				f.expectHydrate([]uint64{5})
			},
		},
		{
			name:    "error: listing missing",
			agentID: 100,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.listingRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: not the owner",
			agentID: 200,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.listingRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).
					Return(&model.ListingEntity{ID: 5, AgentID: 100}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Update(context.Background(), tt.agentID, 5, validListingRequest())
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(5), got.ID)
		})
	}
}

func TestListingApp_Delete(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.listingRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.ListingEntity{ID: 5, AgentID: 100}, nil).Once()
	f.imageRepo.On("ListByListingIDs", mock.Anything, []uint64{5}).Return([]model.ListingImageEntity{
		{ID: 1, ListingID: 5, BlobKey: "k1"},
		{ID: 2, ListingID: 5, BlobKey: "k2"},
	}, nil).Once()
	f.listingRepo.On("DeleteTx", mock.Anything, tx, uint64(5)).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	f.blobs.On("Delete", mock.Anything, "k1").Return(nil).Once()
	f.blobs.On("Delete", mock.Anything, "k2").Return(errors.New("gone")).Once()

	assert.NoError(t, f.app().Delete(context.Background(), 100, 5))
}

func TestListingApp_DeleteImage(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: row and blob removed",
			mockCall: func(f fields) {
				f.imageRepo.On("GetByID", mock.Anything, uint64(9)).Return(&model.ListingImageEntity{ID: 9, ListingID: 5, BlobKey: "k9"}, nil).Once()
				f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, AgentID: 100}, nil).Once()
				f.imageRepo.On("Delete", mock.Anything, uint64(9)).Return(nil).Once()
				f.blobs.On("Delete", mock.Anything, "k9").Return(nil).Once()
			},
		},
		{
			name: "error: image belongs to another listing",
			mockCall: func(f fields) {
				f.imageRepo.On("GetByID", mock.Anything, uint64(9)).Return(&model.ListingImageEntity{ID: 9, ListingID: 6}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: not the owner",
			mockCall: func(f fields) {
				f.imageRepo.On("GetByID", mock.Anything, uint64(9)).Return(&model.ListingImageEntity{ID: 9, ListingID: 5}, nil).Once()
				f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, AgentID: 300}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().DeleteImage(context.Background(), 100, 5, 9)
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListingApp_Get(t *testing.T) {
	t.Run("hydrated with images and reviews", func(t *testing.T) {
		f := newFields(t)
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, AgentID: 100, Likes: 2}, nil).Once()
		f.agentRepo.On("ListByAccountIDs", mock.Anything, []uint64{100}).Return([]model.AgentEntity{{AccountID: 100, DisplayName: "Acme Homes"}}, nil).Once()
		f.imageRepo.On("ListByListingIDs", mock.Anything, []uint64{5}).Return([]model.ListingImageEntity{{ID: 1, ListingID: 5, URL: "u1"}}, nil).Once()
		f.reviewRepo.On("ListByListingIDs", mock.Anything, []uint64{5}).Return([]model.ReviewDetail{{
			ReviewEntity: model.ReviewEntity{ID: 1, ListingID: 5, AccountID: 8, Message: "Lovely", CreatedAt: created},
			FirstName:    "Ada",
			Email:        "ada@example.com",
		}}, nil).Once()

		got, err := f.app().Get(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Likes)
		assert.Equal(t, "Acme Homes", got.Agent.DisplayName)
		require.Len(t, got.Images, 1)
		require.Len(t, got.Reviews, 1)
		assert.Equal(t, "Ada", got.Reviews[0].User.FirstName)
		assert.Equal(t, created, got.Reviews[0].CreatedAt)
	})

	t.Run("missing listing", func(t *testing.T) {
		f := newFields(t)
		f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(nil, nil).Once()

		_, err := f.app().Get(context.Background(), 5)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})
}

func TestListingApp_List(t *testing.T) {
	f := newFields(t)
	rows := []model.ListingEntity{
		{ID: 1, AgentID: 100, Price: 300000},
		{ID: 2, AgentID: 100, Price: 2000000},
		{ID: 3, AgentID: 100, Price: 900000},
	}
	f.listingRepo.On("List", mock.Anything).Return(rows, nil).Once()
	f.expectHydrate([]uint64{1, 3})
	price := int64(1000000)

	got, err := f.app().List(context.Background(), &model.ListingFilter{Price: &price})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}

func TestListingApp_AddReview(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:    "success",
			message: "Spacious and quiet",
			mockCall: func(f fields) {
				f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5}, nil).Once()
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 8}).
					Return(&model.AccountEntity{ID: 8, FirstName: "Ada", Email: "ada@example.com"}, nil).Once()
				f.reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.ReviewEntity) bool {
					return r.ListingID == 5 && r.AccountID == 8 && r.Message == "Spacious and quiet"
				})).Return(uint64(1), nil).Once()
			},
		},
		{
			name:     "error: message too long",
			message:  string(make([]rune, 181)),
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:    "error: listing missing",
			message: "Nice",
			mockCall: func(f fields) {
				f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: listing deleted before insert",
			message: "Nice",
			mockCall: func(f fields) {
				f.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5}, nil).Once()
				f.accountRepo.On("Get", mock.Anything, mock.Anything).Return(&model.AccountEntity{ID: 8}, nil).Once()
				f.reviewRepo.On("Create", mock.Anything, mock.Anything).
					Return(uint64(0), sqlerr.Translate(&mysql.MySQLError{Number: 1452, Message: "fk"})).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().AddReview(context.Background(), 8, 5, &model.ReviewRequest{Message: tt.message})
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ada", got.User.FirstName)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestListingApp_Reindex(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.listingRepo.On("ListTx", mock.Anything, tx).Return([]model.ListingEntity{
		{ID: 1, Name: "Garden Flat", Description: "quiet"},
		{ID: 2, Name: "Penthouse", Description: "views"},
	}, nil).Once()
	f.listingRepo.On("UpdateSearchVectorTx", mock.Anything, tx, uint64(1), textsearch.Build("Garden Flat", "quiet")).Return(nil).Once()
	f.listingRepo.On("UpdateSearchVectorTx", mock.Anything, tx, uint64(2), textsearch.Build("Penthouse", "views")).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	got, err := f.app().Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Reindexed)
}
