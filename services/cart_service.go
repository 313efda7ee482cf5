package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yashrajoria/classroom-shop/cart"
	"github.com/yashrajoria/classroom-shop/catalog"
	"github.com/yashrajoria/classroom-shop/database"
	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/forms"
	"github.com/yashrajoria/classroom-shop/logger"
	"github.com/yashrajoria/classroom-shop/loyalty"
	"github.com/yashrajoria/classroom-shop/models"
)

// CartService defines the cart operations exposed over HTTP.
type CartService interface {
	GetCart(ctx context.Context, id string) (*models.CartSession, error)
	AddItem(ctx context.Context, id string, req models.AddItemRequest) (*models.CartSession, error)
	RemoveItem(ctx context.Context, id string, itemID int) (*models.CartSession, error)
	ApplyDiscount(ctx context.Context, id, code string) (*models.CartSession, error)
	ClearCart(ctx context.Context, id string) (*models.CartSession, error)
	Checkout(ctx context.Context, id string, form forms.Checkout) (*models.CheckoutResponse, error)
}

type cartServiceImpl struct {
	repo      database.CartRepository
	discounts cart.Discounts
	logger    *zap.Logger
}

// NewCartService wires the session store and discount table.
func NewCartService(repo database.CartRepository, discounts cart.Discounts, logger *zap.Logger) CartService {
	if discounts == nil {
		discounts = cart.DefaultDiscounts
	}
	return &cartServiceImpl{repo: repo, discounts: discounts, logger: logger}
}

// load returns the stored session or a fresh one. An empty id allocates a new ID.
func (s *cartServiceImpl) load(ctx context.Context, id string) (*models.CartSession, error) {
	if id == "" {
		return &models.CartSession{ID: uuid.NewString(), Cart: cart.New()}, nil
	}

	session, err := s.repo.GetCart(ctx, id)
	if err != nil {
		logger.Error(ctx, "Failed to load cart", err, zap.String("cart_id", id))
		return nil, apperrors.ErrStoreUnavailable.Wrap(err)
	}
	if session == nil {
		return &models.CartSession{ID: id, Cart: cart.New()}, nil
	}
	if session.Cart == nil {
		session.Cart = cart.New()
	}
	return session, nil
}

func (s *cartServiceImpl) save(ctx context.Context, session *models.CartSession) error {
	if err := s.repo.SaveCart(ctx, session); err != nil {
		logger.Error(ctx, "Failed to save cart", err, zap.String("cart_id", session.ID))
		return apperrors.ErrStoreUnavailable.Wrap(err)
	}
	return nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, id string) (*models.CartSession, error) {
	return s.load(ctx, id)
}

func (s *cartServiceImpl) AddItem(ctx context.Context, id string, req models.AddItemRequest) (*models.CartSession, error) {
	item, err := resolveItem(req)
	if err != nil {
		return nil, err
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Cart.AddItem(item)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("Item added", zap.String("cart_id", session.ID), zap.Int("item_id", item.ID), zap.Int("quantity", item.Quantity))
	return session, nil
}

// resolveItem fills missing fields from the shop catalogue. Quantity defaults to 1.
func resolveItem(req models.AddItemRequest) (cart.Item, error) {
	item := cart.Item{ID: req.ID, Name: req.Name, Quantity: 1}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	shopItem, known := catalog.ShopItem(req.ID)
	if item.Name == "" && known {
		item.Name = shopItem.Name
	}

	switch {
	case req.Price != nil:
		item.Price = *req.Price
	case known:
		item.Price = shopItem.Price
	default:
		return cart.Item{}, apperrors.ErrInvalidInput.Wrap(errors.New("price is required for products outside the shop"))
	}
	return item, nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, id string, itemID int) (*models.CartSession, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Cart.RemoveItem(itemID)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *cartServiceImpl) ApplyDiscount(ctx context.Context, id, code string) (*models.CartSession, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Cart.ApplyDiscountFrom(s.discounts, code); err != nil {
		if errors.Is(err, cart.ErrInvalidDiscountCode) {
			return nil, apperrors.ErrInvalidDiscountCode
		}
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Discount applied", zap.String("cart_id", session.ID), zap.String("code", code))
	return session, nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, id string) (*models.CartSession, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteCart(ctx, session.ID); err != nil {
		logger.Error(ctx, "Failed to clear cart", err, zap.String("cart_id", session.ID))
		return nil, apperrors.ErrStoreUnavailable.Wrap(err)
	}
	session.Cart.Clear()
	return session, nil
}

// Checkout validates the shop form against a non-empty cart, awards loyalty
// points on the line subtotals and empties the cart.
func (s *cartServiceImpl) Checkout(ctx context.Context, id string, form forms.Checkout) (*models.CheckoutResponse, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.Cart.Items) == 0 {
		return nil, apperrors.ErrInvalidForm.Wrap(errors.New("cart is empty"))
	}
	if err := form.Validate(); err != nil {
		return nil, apperrors.ErrInvalidForm.Wrap(err)
	}

	lines := make([]loyalty.Item, 0, len(session.Cart.Items))
	for _, it := range session.Cart.Items {
		subtotal := it.Subtotal()
		lines = append(lines, loyalty.Item{Price: &subtotal})
	}
	points := loyalty.Analyze(lines)

	resp := &models.CheckoutResponse{
		Message:       forms.OrderConfirmation,
		Cart:          session.Cart,
		LoyaltyPoints: points.TotalPoints,
		BonusApplied:  points.BonusApplied,
	}

	if err := s.repo.DeleteCart(ctx, session.ID); err != nil {
		logger.Warn(ctx, "Checkout succeeded but cart was not cleared", zap.String("cart_id", session.ID), zap.Error(err))
	}
	s.logger.Info("Checkout completed",
		zap.String("cart_id", session.ID),
		zap.String("total", session.Cart.Total.String()),
		zap.Int("loyalty_points", points.TotalPoints),
	)
	return resp, nil
}
