package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yashrajoria/classroom-shop/database"
	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/forms"
	"github.com/yashrajoria/classroom-shop/models"
	"github.com/yashrajoria/classroom-shop/services"
)

// --- Mock Repository ---

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetCart(ctx context.Context, id string) (*models.CartSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartSession), args.Error(1)
}

func (m *mockRepo) SaveCart(ctx context.Context, session *models.CartSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockRepo) DeleteCart(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// --- Helpers ---

func newTestCartService() (services.CartService, database.CartRepository) {
	repo := database.NewMemoryCartRepository()
	return services.NewCartService(repo, nil, zap.NewNop()), repo
}

func intPtr(n int) *int { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCheckout() forms.Checkout {
	return forms.Checkout{Name: "Bob", Email: "bob@example.com", CGU: true}
}

// --- Tests ---

func TestCartService_AddItem_NewSession(t *testing.T) {
	svc, repo := newTestCartService()
	ctx := context.Background()

	session, err := svc.AddItem(ctx, "", models.AddItemRequest{ID: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	require.Len(t, session.Cart.Items, 1)
	assert.Equal(t, "T-shirt", session.Cart.Items[0].Name)
	assert.Equal(t, 1, session.Cart.Items[0].Quantity)

	stored, err := repo.GetCart(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Cart.Total.Equal(decimal.NewFromInt(20)))
}

func TestCartService_AddItem_ShopTotal(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	session, err := svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 1})
	require.NoError(t, err)
	session, err = svc.AddItem(ctx, session.ID, models.AddItemRequest{ID: 2})
	require.NoError(t, err)

	assert.Len(t, session.Cart.Items, 2)
	assert.Equal(t, "30", session.Cart.Total.String())
}

func TestCartService_AddItem_CustomItem(t *testing.T) {
	svc, _ := newTestCartService()

	session, err := svc.AddItem(context.Background(), "s1", models.AddItemRequest{
		ID: 42, Name: "Book", Price: decPtr("10"), Quantity: intPtr(0),
	})
	require.NoError(t, err)
	assert.Len(t, session.Cart.Items, 1)
	assert.True(t, session.Cart.Total.IsZero())

	_, err = svc.AddItem(context.Background(), "s1", models.AddItemRequest{ID: 43})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 1, Quantity: intPtr(2)})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 2})
	require.NoError(t, err)

	session, err := svc.RemoveItem(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, "10", session.Cart.Total.String())

	session, err = svc.ClearCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, session.Cart.Items)

	session, err = svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, session.Cart.Items)
}

func TestCartService_ApplyDiscount(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 9, Name: "Book", Price: decPtr("100")})
	require.NoError(t, err)

	session, err := svc.ApplyDiscount(ctx, "s1", "WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, "90", session.Cart.Total.String())

	_, err = svc.ApplyDiscount(ctx, "s1", "welcome10")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDiscountCode)

	session, err = svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "90", session.Cart.Total.String(), "failed discount must not change the stored total")
}

func TestCartService_Checkout(t *testing.T) {
	t.Run("success awards points and empties cart", func(t *testing.T) {
		svc, _ := newTestCartService()
		ctx := context.Background()
		_, err := svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 1})
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 2})
		require.NoError(t, err)

		resp, err := svc.Checkout(ctx, "s1", validCheckout())
		require.NoError(t, err)
		assert.Equal(t, "Commande confirmée", resp.Message)
		assert.Equal(t, 3, resp.LoyaltyPoints)
		assert.False(t, resp.BonusApplied)

		session, err := svc.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, session.Cart.Items)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, _ := newTestCartService()
		_, err := svc.Checkout(context.Background(), "s1", validCheckout())
		assert.ErrorIs(t, err, apperrors.ErrInvalidForm)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		svc, _ := newTestCartService()
		ctx := context.Background()
		_, err := svc.AddItem(ctx, "s1", models.AddItemRequest{ID: 2})
		require.NoError(t, err)

		form := validCheckout()
		form.CGU = false
		_, err = svc.Checkout(ctx, "s1", form)
		assert.ErrorIs(t, err, apperrors.ErrInvalidForm)

		session, err := svc.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, session.Cart.Items, 1, "rejected checkout keeps the cart")
	})
}

func TestCartService_StoreFailure(t *testing.T) {
	repo := new(mockRepo)
	svc := services.NewCartService(repo, nil, zap.NewNop())

	repo.On("GetCart", mock.Anything, "s1").Return(nil, errors.New("connection refused")).Once()
	_, err := svc.GetCart(context.Background(), "s1")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	repo.On("GetCart", mock.Anything, "s2").Return(nil, nil).Once()
	repo.On("SaveCart", mock.Anything, mock.AnythingOfType("*models.CartSession")).Return(errors.New("read only")).Once()
	_, err = svc.AddItem(context.Background(), "s2", models.AddItemRequest{ID: 1})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)

	repo.AssertExpectations(t)
}
