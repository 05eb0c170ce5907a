package handler

import (
	"net/http"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressHandler_AddAddress(t *testing.T) {
	userID := uuid.New()

	t.Run("created", func(t *testing.T) {
		addresses := mockUsecase.NewMockAddressUsecase(t)
		h := NewAddressHandler(addresses)
		addresses.EXPECT().
			AddAddress(mock.Anything, userID, mock.MatchedBy(func(in *usecase.AddAddressInput) bool {
				return in.Type == entity.AddressTypeShipping && in.City == "Accra" && in.Latitude != nil && *in.Latitude == 5.6
			})).
			Return(&entity.Address{ID: uuid.New(), UserID: userID, Type: entity.AddressTypeShipping, City: "Accra", IsDefault: true}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/addresses", h.AddAddress, customer(userID)},
			http.MethodPost, "/addresses",
			`{"type":"shipping","full_name":"Ama Mensah","street":"12 Oxford St","city":"Accra","latitude":5.6,"longitude":-0.18}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Accra", decodeData[AddressResponse](t, rec).City)
	})

	t.Run("unknown type", func(t *testing.T) {
		h := NewAddressHandler(mockUsecase.NewMockAddressUsecase(t))

		rec := serve(t, testRoute{http.MethodPost, "/addresses", h.AddAddress, customer(userID)},
			http.MethodPost, "/addresses", `{"type":"holiday","full_name":"A","street":"B","city":"C"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddressHandler_GetAddress_Foreign(t *testing.T) {
	addresses := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(addresses)
	userID, addressID := uuid.New(), uuid.New()
	addresses.EXPECT().GetAddress(mock.Anything, userID, addressID).Return(nil, domainerrors.ErrForbidden).Once()

	rec := serve(t, testRoute{http.MethodGet, "/addresses/:id", h.GetAddress, customer(userID)},
		http.MethodGet, "/addresses/"+addressID.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
