package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"food-marketplace/internal/auth"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/service/account"
	"food-marketplace/internal/service/helpdesk"
)

type stubAccountUsecase struct {
	registerFn func(ctx context.Context, role domain.Role, in account.RegisterInput) (account.AuthResult, error)
	loginFn    func(ctx context.Context, role domain.Role, email, password string) (account.AuthResult, error)
	profileFn  func(ctx context.Context, p domain.Principal) (domain.Profile, error)
}

func (s *stubAccountUsecase) Register(ctx context.Context, role domain.Role, in account.RegisterInput) (account.AuthResult, error) {
	if s.registerFn == nil {
		panic("Register not expected in this test")
	}
	return s.registerFn(ctx, role, in)
}

func (s *stubAccountUsecase) Login(ctx context.Context, role domain.Role, email, password string) (account.AuthResult, error) {
	if s.loginFn == nil {
		panic("Login not expected in this test")
	}
	return s.loginFn(ctx, role, email, password)
}

func (s *stubAccountUsecase) Profile(ctx context.Context, p domain.Principal) (domain.Profile, error) {
	if s.profileFn == nil {
		panic("Profile not expected in this test")
	}
	return s.profileFn(ctx, p)
}

type stubRestaurantUsecase struct {
	listFn   func(ctx context.Context, f domain.RestaurantFilter) ([]domain.Restaurant, error)
	getFn    func(ctx context.Context, id int64) (*domain.Restaurant, error)
	addFn    func(ctx context.Context, restaurantID int64, it domain.MenuItem) ([]domain.MenuItem, error)
	updateFn func(ctx context.Context, u domain.PartialMenuItemUpdate) ([]domain.MenuItem, error)
	deleteFn func(ctx context.Context, restaurantID, itemID int64) ([]domain.MenuItem, error)
}

func (s *stubRestaurantUsecase) List(ctx context.Context, f domain.RestaurantFilter) ([]domain.Restaurant, error) {
	if s.listFn == nil {
		panic("List not expected in this test")
	}
	return s.listFn(ctx, f)
}

func (s *stubRestaurantUsecase) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func (s *stubRestaurantUsecase) AddMenuItem(ctx context.Context, restaurantID int64, it domain.MenuItem) ([]domain.MenuItem, error) {
	if s.addFn == nil {
		panic("AddMenuItem not expected in this test")
	}
	return s.addFn(ctx, restaurantID, it)
}

func (s *stubRestaurantUsecase) UpdateMenuItem(ctx context.Context, u domain.PartialMenuItemUpdate) ([]domain.MenuItem, error) {
	if s.updateFn == nil {
		panic("UpdateMenuItem not expected in this test")
	}
	return s.updateFn(ctx, u)
}

func (s *stubRestaurantUsecase) DeleteMenuItem(ctx context.Context, restaurantID, itemID int64) ([]domain.MenuItem, error) {
	if s.deleteFn == nil {
		panic("DeleteMenuItem not expected in this test")
	}
	return s.deleteFn(ctx, restaurantID, itemID)
}

type stubOrderUsecase struct {
	createFn         func(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	getFn            func(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error)
	historyFn        func(ctx context.Context, p domain.Principal, id int64) ([]domain.OrderHistoryEntry, error)
	listCustomerFn   func(ctx context.Context, id int64) ([]domain.Order, error)
	listRestaurantFn func(ctx context.Context, id int64) ([]domain.Order, error)
	listCourierFn    func(ctx context.Context, id int64) ([]domain.Order, error)
	listAvailableFn  func(ctx context.Context) ([]domain.Order, error)
	restaurantMoveFn func(ctx context.Context, restaurantID, id int64, to domain.OrderStatus) (*domain.Order, error)
	assignFn         func(ctx context.Context, courierID, id int64) (*domain.Order, error)
	courierMoveFn    func(ctx context.Context, courierID, id int64, to domain.OrderStatus) (*domain.Order, error)
}

func (s *stubOrderUsecase) Create(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, in)
}

func (s *stubOrderUsecase) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, p, id)
}

func (s *stubOrderUsecase) History(ctx context.Context, p domain.Principal, id int64) ([]domain.OrderHistoryEntry, error) {
	if s.historyFn == nil {
		panic("History not expected in this test")
	}
	return s.historyFn(ctx, p, id)
}

func (s *stubOrderUsecase) ListForCustomer(ctx context.Context, id int64) ([]domain.Order, error) {
	if s.listCustomerFn == nil {
		panic("ListForCustomer not expected in this test")
	}
	return s.listCustomerFn(ctx, id)
}

func (s *stubOrderUsecase) ListForRestaurant(ctx context.Context, id int64) ([]domain.Order, error) {
	if s.listRestaurantFn == nil {
		panic("ListForRestaurant not expected in this test")
	}
	return s.listRestaurantFn(ctx, id)
}

func (s *stubOrderUsecase) ListForCourier(ctx context.Context, id int64) ([]domain.Order, error) {
	if s.listCourierFn == nil {
		panic("ListForCourier not expected in this test")
	}
	return s.listCourierFn(ctx, id)
}

func (s *stubOrderUsecase) ListAvailable(ctx context.Context) ([]domain.Order, error) {
	if s.listAvailableFn == nil {
		panic("ListAvailable not expected in this test")
	}
	return s.listAvailableFn(ctx)
}

func (s *stubOrderUsecase) UpdateStatusByRestaurant(ctx context.Context, restaurantID, id int64, to domain.OrderStatus) (*domain.Order, error) {
	if s.restaurantMoveFn == nil {
		panic("UpdateStatusByRestaurant not expected in this test")
	}
	return s.restaurantMoveFn(ctx, restaurantID, id, to)
}

func (s *stubOrderUsecase) Assign(ctx context.Context, courierID, id int64) (*domain.Order, error) {
	if s.assignFn == nil {
		panic("Assign not expected in this test")
	}
	return s.assignFn(ctx, courierID, id)
}

func (s *stubOrderUsecase) UpdateDeliveryStatus(ctx context.Context, courierID, id int64, to domain.OrderStatus) (*domain.Order, error) {
	if s.courierMoveFn == nil {
		panic("UpdateDeliveryStatus not expected in this test")
	}
	return s.courierMoveFn(ctx, courierID, id, to)
}

type stubHelpdeskUsecase struct {
	createFn   func(ctx context.Context, owner *domain.Principal, in helpdesk.TicketInput) (*domain.Ticket, error)
	listMineFn func(ctx context.Context, p domain.Principal) ([]domain.Ticket, error)
	listAllFn  func(ctx context.Context, f domain.TicketFilter) ([]domain.Ticket, error)
	getFn      func(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error)
	updateFn   func(ctx context.Context, u domain.TicketUpdate) (*domain.Ticket, error)
}

func (s *stubHelpdeskUsecase) Create(ctx context.Context, owner *domain.Principal, in helpdesk.TicketInput) (*domain.Ticket, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, owner, in)
}

func (s *stubHelpdeskUsecase) ListMine(ctx context.Context, p domain.Principal) ([]domain.Ticket, error) {
	if s.listMineFn == nil {
		panic("ListMine not expected in this test")
	}
	return s.listMineFn(ctx, p)
}

func (s *stubHelpdeskUsecase) ListAll(ctx context.Context, f domain.TicketFilter) ([]domain.Ticket, error) {
	if s.listAllFn == nil {
		panic("ListAll not expected in this test")
	}
	return s.listAllFn(ctx, f)
}

func (s *stubHelpdeskUsecase) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, p, id)
}

func (s *stubHelpdeskUsecase) Update(ctx context.Context, u domain.TicketUpdate) (*domain.Ticket, error) {
	if s.updateFn == nil {
		panic("Update not expected in this test")
	}
	return s.updateFn(ctx, u)
}

// newRequest builds a request with chi URL params and, when p is non-nil, an
// authenticated principal.
func newRequest(method, target, body string, p *domain.Principal, params map[string]string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	routeCtx := chi.NewRouteContext()
	for k, v := range params {
		routeCtx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	if p != nil {
		ctx = auth.WithPrincipal(ctx, *p)
	}
	return req.WithContext(ctx)
}

func as(role domain.Role, id int64) *domain.Principal {
	return &domain.Principal{ID: id, Role: role}
}
