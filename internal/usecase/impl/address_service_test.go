package impl

import (
	"context"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	addressRepo := mockRepo.NewMockAddressRepository(t)

	return addressServiceFixtures{
		service:     NewAddressService(addressRepo),
		addressRepo: addressRepo,
	}
}

func validAddressInput(addressType entity.AddressType) *usecase.AddAddressInput {
	return &usecase.AddAddressInput{
		Type:     addressType,
		FullName: " Ama Mensah ",
		Street:   "12 Ring Road",
		City:     "Accra",
		Country:  "GH",
		Phone:    "+233200000000",
	}
}

func TestAddressService_AddAddress_FirstOfTypeBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := []*entity.Address{{ID: uuid.New(), UserID: userID, Type: entity.AddressTypeBilling, IsDefault: true}}

	fx.addressRepo.EXPECT().FindAddressesByUser(ctx, userID).Return(existing, nil).Once()
	fx.addressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil).Once()

	address, err := fx.service.AddAddress(ctx, userID, validAddressInput(entity.AddressTypeShipping))

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "Ama Mensah", address.FullName)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_AddAddress_SecondOfTypeIsNotDefault(t *testing.T) {
	fx := createTestAddressService(t)

	userID := uuid.New()
	existing := []*entity.Address{{ID: uuid.New(), UserID: userID, Type: entity.AddressTypeShipping, IsDefault: true}}

	fx.addressRepo.EXPECT().FindAddressesByUser(mock.Anything, userID).Return(existing, nil).Once()
	fx.addressRepo.EXPECT().CreateAddress(mock.Anything, mock.Anything).Return(nil).Once()

	address, err := fx.service.AddAddress(context.Background(), userID, validAddressInput(entity.AddressTypeShipping))

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_AddAddress_Validation(t *testing.T) {
	lat := 5.6

	tests := []struct {
		name  string
		input *usecase.AddAddressInput
	}{
		{name: "unknown type", input: validAddressInput("postal")},
		{name: "missing street", input: &usecase.AddAddressInput{Type: entity.AddressTypeBilling, FullName: "A", City: "Accra"}},
		{name: "latitude without longitude", input: func() *usecase.AddAddressInput {
			in := validAddressInput(entity.AddressTypeBilling)
			in.Latitude = &lat

			return in
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t)

			_, err := fx.service.AddAddress(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAddressService_AddAddress_LimitReached(t *testing.T) {
	fx := createTestAddressService(t)

	userID := uuid.New()
	existing := make([]*entity.Address, maxAddressesPerUser)
	for i := range existing {
		existing[i] = &entity.Address{ID: uuid.New(), UserID: userID, Type: entity.AddressTypeBilling}
	}
	fx.addressRepo.EXPECT().FindAddressesByUser(mock.Anything, userID).Return(existing, nil).Once()

	_, err := fx.service.AddAddress(context.Background(), userID, validAddressInput(entity.AddressTypeBilling))

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAddressService_GetAddress(t *testing.T) {
	userID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestAddressService(t)
		address := &entity.Address{ID: uuid.New(), UserID: userID}
		fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()

		got, err := fx.service.GetAddress(context.Background(), userID, address.ID)

		require.NoError(t, err)
		assert.Equal(t, address, got)
	})

	t.Run("another user", func(t *testing.T) {
		fx := createTestAddressService(t)
		address := &entity.Address{ID: uuid.New(), UserID: uuid.New()}
		fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Once()

		_, err := fx.service.GetAddress(context.Background(), userID, address.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestAddressService(t)
		id := uuid.New()
		fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, id).Return(nil, repository.ErrAddressNotFound).Once()

		_, err := fx.service.GetAddress(context.Background(), userID, id)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestAddressService(t)
		id := uuid.New()
		fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, id).Return(nil, errors.New("db down")).Once()

		_, err := fx.service.GetAddress(context.Background(), userID, id)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
