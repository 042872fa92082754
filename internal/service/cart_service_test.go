package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carvedrock/storefront/internal/models"
	"github.com/carvedrock/storefront/internal/repository"
)

func setupCartServiceTest(t *testing.T) (*CartService, *CartEvents) {
	t.Helper()
	events := NewCartEvents()
	svc := NewCartService(repository.NewMemoryCartRepository(), events)
	return svc, events
}

func carabiner() *models.Product {
	return &models.Product{
		ID:       5,
		Name:     "PeakLock Carabiner",
		Category: "equipment",
		Price:    models.NewMoneyFromString("19.99"),
	}
}

func hikingBoots() *models.Product {
	return &models.Product{
		ID:       1,
		Name:     "PeakPulse Hiking Boots",
		Category: "footwear",
		Price:    models.NewMoneyFromString("79.99"),
	}
}

func TestCartServiceAddToCartSnapshotsProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	id := NewIdentity("session-1", "", "")

	if err := svc.AddToCart(context.Background(), id, carabiner(), 3); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	cart, err := svc.GetCart(id)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart))
	}
	item := cart[0]
	if item.ProductID != 5 || item.Quantity != 3 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.ProductName != "PeakLock Carabiner" {
		t.Fatalf("expected name snapshot, got %q", item.ProductName)
	}
	if item.Price.String() != "19.99" {
		t.Fatalf("expected price snapshot 19.99, got %s", item.Price.String())
	}
	if item.AddedAt.IsZero() {
		t.Fatalf("expected added_at set")
	}
}

func TestCartServiceAddToCartAccumulatesQuantity(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	id := NewIdentity("session-1", "", "")

	if err := svc.AddToCart(context.Background(), id, carabiner(), 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddToCart(context.Background(), id, carabiner(), 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	cart, err := svc.GetCart(id)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected a single line item, got %d", len(cart))
	}
	if cart[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart[0].Quantity)
	}
}

func TestCartServiceAddToCartNilProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	id := NewIdentity("session-1", "", "")

	err := svc.AddToCart(context.Background(), id, nil, 1)
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestCartServiceMissingIdentity(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	id := NewIdentity("", "", "")

	if _, err := svc.GetCart(id); !errors.Is(err, ErrMissingSessionKey) {
		t.Fatalf("expected ErrMissingSessionKey on get, got %v", err)
	}
	if err := svc.AddToCart(context.Background(), id, carabiner(), 1); !errors.Is(err, ErrMissingSessionKey) {
		t.Fatalf("expected ErrMissingSessionKey on add, got %v", err)
	}
	if err := svc.RemoveFromCart(context.Background(), id, 5); !errors.Is(err, ErrMissingSessionKey) {
		t.Fatalf("expected ErrMissingSessionKey on remove, got %v", err)
	}
	if err := svc.ClearCart(context.Background(), id); !errors.Is(err, ErrMissingSessionKey) {
		t.Fatalf("expected ErrMissingSessionKey on clear, got %v", err)
	}
}

func TestCartServiceRemoveFromCart(t *testing.T) {
	svc, events := setupCartServiceTest(t)
	id := NewIdentity("session-1", "", "")

	published := 0
	events.Subscribe(func(ctx context.Context) error {
		published++
		return nil
	})

	if err := svc.AddToCart(context.Background(), id, carabiner(), 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddToCart(context.Background(), id, hikingBoots(), 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveFromCart(context.Background(), id, 5); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	cart, err := svc.GetCart(id)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart) != 1 || cart[0].ProductID != 1 {
		t.Fatalf("expected only boots left, got %+v", cart)
	}
	if published != 3 {
		t.Fatalf("expected 3 publications, got %d", published)
	}

	// 移除不存在的商品静默返回，不广播
	if err := svc.RemoveFromCart(context.Background(), id, 42); err != nil {
		t.Fatalf("remove missing failed: %v", err)
	}
	if published != 3 {
		t.Fatalf("expected no publish for missing product, got %d", published)
	}
}

func TestCartServiceClearCartAlwaysPublishes(t *testing.T) {
	svc, events := setupCartServiceTest(t)
	id := NewIdentity("session-1", "", "")

	published := 0
	events.Subscribe(func(ctx context.Context) error {
		published++
		return nil
	})

	if err := svc.AddToCart(context.Background(), id, carabiner(), 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.ClearCart(context.Background(), id); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	// 购物车已空仍广播
	if err := svc.ClearCart(context.Background(), id); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	if published != 3 {
		t.Fatalf("expected 3 publications, got %d", published)
	}

	cart, err := svc.GetCart(id)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart))
	}
}

func TestCartServicePartitionIsolation(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	first := NewIdentity("session-1", "", "")
	second := NewIdentity("session-2", "", "")

	if err := svc.AddToCart(context.Background(), first, carabiner(), 1); err != nil {
		t.Fatalf("add to first cart failed: %v", err)
	}
	if err := svc.AddToCart(context.Background(), second, hikingBoots(), 2); err != nil {
		t.Fatalf("add to second cart failed: %v", err)
	}

	firstCart, err := svc.GetCart(first)
	if err != nil {
		t.Fatalf("get first cart failed: %v", err)
	}
	if len(firstCart) != 1 || firstCart[0].ProductID != 5 {
		t.Fatalf("first cart leaked: %+v", firstCart)
	}
	secondCart, err := svc.GetCart(second)
	if err != nil {
		t.Fatalf("get second cart failed: %v", err)
	}
	if len(secondCart) != 1 || secondCart[0].ProductID != 1 {
		t.Fatalf("second cart leaked: %+v", secondCart)
	}
}

func TestCartServiceUserKeySupersedesSession(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	authenticated := NewIdentity("session-1", "aad", "user-1")

	if err := svc.AddToCart(context.Background(), authenticated, carabiner(), 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// 同一用户换了会话仍能看到购物车
	sameUserNewSession := NewIdentity("session-2", "aad", "user-1")
	cart, err := svc.GetCart(sameUserNewSession)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected cart to follow user key, got %d items", len(cart))
	}

	// 匿名访问原会话看不到
	anonymous := NewIdentity("session-1", "", "")
	anonCart, err := svc.GetCart(anonymous)
	if err != nil {
		t.Fatalf("get anonymous cart failed: %v", err)
	}
	if len(anonCart) != 0 {
		t.Fatalf("expected empty anonymous cart, got %d items", len(anonCart))
	}
}

func TestCartServiceAdoptsSessionCartOnLogin(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	anonymous := NewIdentity("session-1", "", "")

	if err := svc.AddToCart(context.Background(), anonymous, carabiner(), 2); err != nil {
		t.Fatalf("anonymous add failed: %v", err)
	}

	// 登录后第一次读取即并入用户购物车
	authenticated := NewIdentity("session-1", "aad", "user-1")
	cart, err := svc.GetCart(authenticated)
	if err != nil {
		t.Fatalf("get cart after login failed: %v", err)
	}
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("expected adopted cart, got %+v", cart)
	}

	// 会话分区已清空
	anonCart, err := svc.GetCart(anonymous)
	if err != nil {
		t.Fatalf("get session cart failed: %v", err)
	}
	if len(anonCart) != 0 {
		t.Fatalf("expected session cart drained, got %d items", len(anonCart))
	}
}

func TestCartServiceAdoptMergesQuantities(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	// 用户购物车里已有 2 个
	if err := svc.AddToCart(context.Background(), NewIdentity("other-session", "aad", "user-1"), carabiner(), 2); err != nil {
		t.Fatalf("user add failed: %v", err)
	}
	// 匿名会话里又加了 3 个
	if err := svc.AddToCart(context.Background(), NewIdentity("session-1", "", ""), carabiner(), 3); err != nil {
		t.Fatalf("anonymous add failed: %v", err)
	}

	cart, err := svc.GetCart(NewIdentity("session-1", "aad", "user-1"))
	if err != nil {
		t.Fatalf("get merged cart failed: %v", err)
	}
	if len(cart) != 1 {
		t.Fatalf("expected a single merged line item, got %d", len(cart))
	}
	if cart[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart[0].Quantity)
	}
}

func TestCartServicePruneStale(t *testing.T) {
	repo := repository.NewMemoryCartRepository()
	svc := NewCartService(repo, NewCartEvents())

	stale := models.CartItem{
		ProductID:   1,
		ProductName: "PeakPulse Hiking Boots",
		Price:       models.NewMoneyFromString("79.99"),
		Quantity:    1,
		AddedAt:     time.Now().UTC().Add(-40 * 24 * time.Hour),
	}
	if err := repo.SaveCart("session-1", "", []models.CartItem{stale}); err != nil {
		t.Fatalf("save stale cart failed: %v", err)
	}
	if err := svc.AddToCart(context.Background(), NewIdentity("session-2", "", ""), carabiner(), 1); err != nil {
		t.Fatalf("add fresh item failed: %v", err)
	}

	removed, err := svc.PruneStale(30 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
}
