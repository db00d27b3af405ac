package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/mocks"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
)

func historyOrder(name, phone string, createdAt time.Time, selections map[string]interface{}) model.Order {
	return model.Order{
		ID: primitive.NewObjectID(),
		Customer: model.CustomerInfo{
			Name:        name,
			Phone:       phone,
			PhoneDigits: model.NormalizePhone(phone),
		},
		Selections: selections,
		CreatedAt:  createdAt,
	}
}

func TestLookupByPhone(t *testing.T) {
	now := time.Now()

	t.Run("groups orders into customers", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewCustomerService(repo, catalog.DeerCatalog())

		// Most recent first, as the repository returns them
		repo.On("Find", mock.Anything, repository.OrderFilter{PhoneDigits: "3305550199"}, historyWindow, 0).
			Return([]model.Order{
				historyOrder("Jo Hunter", "(330) 555-0199", now, nil),
				historyOrder("jo hunter", "3305550199", now.Add(-48*time.Hour), nil),
				historyOrder("Sam Archer", "(330) 555-0199", now.Add(-72*time.Hour), nil),
			}, nil)

		customers, err := svc.LookupByPhone(context.Background(), "(330) 555-0199")
		require.NoError(t, err)
		require.Len(t, customers, 2)

		// Name matching is case-insensitive; display fields come from the
		// most recent order
		assert.Equal(t, "Jo Hunter", customers[0].Name)
		assert.Equal(t, 2, customers[0].OrderCount)
		assert.Equal(t, now, customers[0].LastOrderAt)

		assert.Equal(t, "Sam Archer", customers[1].Name)
		assert.Equal(t, 1, customers[1].OrderCount)
	})

	t.Run("short phone rejected", func(t *testing.T) {
		svc := NewCustomerService(new(mocks.MockOrdersRepositoryInterface), catalog.DeerCatalog())
		_, err := svc.LookupByPhone(context.Background(), "330")
		assert.ErrorIs(t, err, ErrPhoneTooShort)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewCustomerService(repo, catalog.DeerCatalog())
		repo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("primary stepped down"))

		_, err := svc.LookupByPhone(context.Background(), "3305550199")
		assert.Error(t, err)
	})
}

func TestPreferenceSets(t *testing.T) {
	now := time.Now()

	samePrefs := map[string]interface{}{
		catalog.KeySkinnedOrBoneless: "Skinned, Cut, Ground, Vacuum packed",
		catalog.KeyBackStrap1:        "Sliced",
	}

	t.Run("identical preferences collapse across hunts", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewCustomerService(repo, catalog.DeerCatalog())

		recent := historyOrder("Jo Hunter", "3305550199", now, map[string]interface{}{
			catalog.KeySkinnedOrBoneless: "Skinned, Cut, Ground, Vacuum packed",
			catalog.KeyBackStrap1:        "Sliced",
			catalog.KeyTagNumber:         "T-200",
		})
		older := historyOrder("Jo Hunter", "3305550199", now.Add(-24*time.Hour), map[string]interface{}{
			catalog.KeySkinnedOrBoneless: "Skinned, Cut, Ground, Vacuum packed",
			catalog.KeyBackStrap1:        "sliced", // different case, same preference
			catalog.KeyTagNumber:         "T-100",  // different deer
		})
		distinct := historyOrder("Jo Hunter", "3305550199", now.Add(-48*time.Hour), map[string]interface{}{
			catalog.KeySkinnedOrBoneless: catalog.ValueDonation,
		})

		repo.On("Find", mock.Anything, repository.OrderFilter{ExactPhoneDigits: "3305550199"}, historyWindow, 0).
			Return([]model.Order{recent, older, distinct}, nil)

		sets, err := svc.PreferenceSets(context.Background(), "3305550199")
		require.NoError(t, err)
		require.Len(t, sets, 2)

		// The collapsed set carries the most recent order's id and count
		assert.Equal(t, 2, sets[0].OrderCount)
		assert.Equal(t, recent.ID.Hex(), sets[0].LastOrderID)
		assert.Equal(t, "Sliced", sets[0].Selections[catalog.KeyBackStrap1])
		assert.NotContains(t, sets[0].Selections, catalog.KeyTagNumber)

		assert.Equal(t, 1, sets[1].OrderCount)
	})

	t.Run("storage failure degrades to empty", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewCustomerService(repo, catalog.DeerCatalog())
		repo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("network down"))

		sets, err := svc.PreferenceSets(context.Background(), "3305550199")
		require.NoError(t, err)
		assert.Empty(t, sets)
	})

	t.Run("short phone rejected", func(t *testing.T) {
		svc := NewCustomerService(new(mocks.MockOrdersRepositoryInterface), catalog.DeerCatalog())
		_, err := svc.PreferenceSets(context.Background(), "12")
		assert.ErrorIs(t, err, ErrPhoneTooShort)
	})

	t.Run("cache serves repeats and invalidates", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewCustomerService(repo, catalog.DeerCatalog(),
			WithPreferenceCache(16, time.Minute))

		repo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]model.Order{historyOrder("Jo Hunter", "3305550199", now, samePrefs)}, nil).Once()

		first, err := svc.PreferenceSets(context.Background(), "3305550199")
		require.NoError(t, err)
		second, err := svc.PreferenceSets(context.Background(), "(330) 555-0199")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "Find", 1)

		// After invalidation the store is consulted again
		svc.InvalidatePreferences("3305550199")
		repo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]model.Order{}, nil).Once()
		_, err = svc.PreferenceSets(context.Background(), "3305550199")
		require.NoError(t, err)
		repo.AssertNumberOfCalls(t, "Find", 2)
	})
}
