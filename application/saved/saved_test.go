package saved_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	appsaved "github.com/prettyirrelevant/ecx-property-hub-hackathon/application/saved"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	hydratormocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/application/saved"
	savedmocks "github.com/prettyirrelevant/ecx-property-hub-hackathon/mocks/repository/saved"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	cerr "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	savedRepo *savedmocks.SavedRepository
	hydrator  *hydratormocks.ListingHydrator
}

func TestSavedApp_Save(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pair inserted",
			mockCall: func(f fields) {
				f.savedRepo.On("Insert", mock.Anything, uint64(1), uint64(10)).Return(nil).Once()
			},
		},
		{
			name: "error: pair already saved",
			mockCall: func(f fields) {
				f.savedRepo.On("Insert", mock.Anything, uint64(1), uint64(10)).
					Return(sqlerr.Translate(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-10' for key 'saved_listing.PRIMARY'"})).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadySaved,
		},
		{
			name: "error: listing does not exist",
			mockCall: func(f fields) {
				f.savedRepo.On("Insert", mock.Anything, uint64(1), uint64(10)).
					Return(sqlerr.Translate(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: database failure",
			mockCall: func(f fields) {
				f.savedRepo.On("Insert", mock.Anything, uint64(1), uint64(10)).Return(errors.New("connection reset")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				savedRepo: savedmocks.NewSavedRepository(t),
				hydrator:  hydratormocks.NewListingHydrator(t),
			}
			tt.mockCall(f)
			s := appsaved.NewSavedApp(f.savedRepo, f.hydrator)

			err := s.Save(context.Background(), 1, 10)
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSavedApp_Unsave(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pair removed",
			mockCall: func(f fields) {
				f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(true, nil).Once()
			},
		},
		{
			name: "error: pair was not saved",
			mockCall: func(f fields) {
				f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(false, nil).Once()
				f.savedRepo.On("ListingExists", mock.Anything, uint64(10)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotSaved,
		},
		{
			name: "error: listing does not exist",
			mockCall: func(f fields) {
				f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(false, nil).Once()
				f.savedRepo.On("ListingExists", mock.Anything, uint64(10)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: existence check fails",
			mockCall: func(f fields) {
				f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(false, nil).Once()
				f.savedRepo.On("ListingExists", mock.Anything, uint64(10)).Return(false, errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: database failure",
			mockCall: func(f fields) {
				f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(false, errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				savedRepo: savedmocks.NewSavedRepository(t),
				hydrator:  hydratormocks.NewListingHydrator(t),
			}
			tt.mockCall(f)
			s := appsaved.NewSavedApp(f.savedRepo, f.hydrator)

			err := s.Unsave(context.Background(), 1, 10)
			if tt.wantErr {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSavedApp_SaveThenUnsaveTwice(t *testing.T) {
	f := fields{
		savedRepo: savedmocks.NewSavedRepository(t),
		hydrator:  hydratormocks.NewListingHydrator(t),
	}
	dup := sqlerr.Translate(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-10' for key 'saved_listing.PRIMARY'"})
	f.savedRepo.On("Insert", mock.Anything, uint64(1), uint64(10)).Return(nil).Once()
	f.savedRepo.On("Insert", mock.Anything, uint64(1), uint64(10)).Return(dup).Once()
	f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(true, nil).Once()
	f.savedRepo.On("Delete", mock.Anything, uint64(1), uint64(10)).Return(false, nil).Once()
	f.savedRepo.On("ListingExists", mock.Anything, uint64(10)).Return(true, nil).Once()
	s := appsaved.NewSavedApp(f.savedRepo, f.hydrator)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, 1, 10))
	assert.True(t, cerr.IsType(s.Save(ctx, 1, 10), constant.ErrAlreadySaved))
	require.NoError(t, s.Unsave(ctx, 1, 10))
	assert.True(t, cerr.IsType(s.Unsave(ctx, 1, 10), constant.ErrNotSaved))
}

func TestSavedApp_ListSaved(t *testing.T) {
	f := fields{
		savedRepo: savedmocks.NewSavedRepository(t),
		hydrator:  hydratormocks.NewListingHydrator(t),
	}
	rows := []model.ListingEntity{{ID: 3, Name: "Duplex"}, {ID: 1, Name: "Studio"}}
	f.savedRepo.On("ListListings", mock.Anything, uint64(1)).Return(rows, nil).Once()
	f.hydrator.On("Hydrate", mock.Anything, rows).Return([]model.ListingDetail{
		{ListingEntity: rows[0]},
		{ListingEntity: rows[1]},
	}, nil).Once()

	got, err := appsaved.NewSavedApp(f.savedRepo, f.hydrator).ListSaved(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(3), got[0].ID, "save order is kept")
}
