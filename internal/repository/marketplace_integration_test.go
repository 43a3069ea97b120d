//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/repository"
)

type MarketplaceSuite struct {
	suite.Suite
	ctx         context.Context
	accounts    *repository.AccountRepo
	restaurants *repository.RestaurantRepo
	couriers    *repository.CourierRepo
	orders      *repository.OrderRepo
	tickets     *repository.TicketRepo
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceSuite))
}

func (s *MarketplaceSuite) SetupSuite() {
	s.ctx = context.Background()
	s.accounts = repository.NewAccountRepo(tcPool)
	s.restaurants = repository.NewRestaurantRepo(tcPool)
	s.couriers = repository.NewCourierRepo(tcPool)
	s.orders = repository.NewOrderRepo(tcPool)
	s.tickets = repository.NewTicketRepo(tcPool)
}

func (s *MarketplaceSuite) SetupTest() {
	truncateAll(s.T())
}

func (s *MarketplaceSuite) seedCustomer(email string) int64 {
	id, err := s.accounts.CreateUser(s.ctx, &domain.User{
		Name: "Ann", Email: email, PasswordHash: "h", Phone: "+100", Address: "Main st 1", Role: domain.RoleCustomer,
	})
	s.Require().NoError(err)
	return id
}

func (s *MarketplaceSuite) seedRestaurant(email string, cuisine ...string) int64 {
	id, err := s.accounts.CreateRestaurant(s.ctx, &domain.Restaurant{
		Name: "Pasta Place", Email: email, PasswordHash: "h", Phone: "+200", Address: "Food st 2", Cuisine: cuisine,
	})
	s.Require().NoError(err)
	return id
}

func (s *MarketplaceSuite) seedCourier(email string) int64 {
	id, err := s.accounts.CreateCourier(s.ctx, &domain.Courier{
		Name: "Bob", Email: email, PasswordHash: "h", Phone: "+300",
		VehicleType: domain.VehicleBike, VehicleNumber: "B-1",
	})
	s.Require().NoError(err)
	return id
}

func (s *MarketplaceSuite) seedItem(restaurantID int64, name string, price int64) int64 {
	id, err := s.restaurants.AddMenuItem(s.ctx, &domain.MenuItem{
		RestaurantID: restaurantID, Name: name, PriceCents: price, IsAvailable: true,
	})
	s.Require().NoError(err)
	return id
}

func (s *MarketplaceSuite) seedOrder(customerID, restaurantID, itemID int64) int64 {
	id, err := s.orders.Create(s.ctx, &domain.Order{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		Items:           []domain.OrderItem{{MenuItemID: itemID, Name: "Carbonara", PriceCents: 1250, Quantity: 2}},
		TotalCents:      2500,
		DeliveryAddress: "Main st 1",
		Status:          domain.OrderPending,
		PaymentStatus:   domain.PaymentPending,
	})
	s.Require().NoError(err)
	return id
}

func (s *MarketplaceSuite) TestAccounts_DuplicateEmailIsConflict() {
	s.seedCustomer("ann@example.com")

	_, err := s.accounts.CreateUser(s.ctx, &domain.User{
		Name: "Ann 2", Email: "ann@example.com", PasswordHash: "h", Role: domain.RoleCustomer,
	})
	s.Require().ErrorIs(err, apperr.ErrConflict)

	// other account types keep their own email namespace
	s.seedRestaurant("ann@example.com")
}

func (s *MarketplaceSuite) TestAccounts_CredentialsByRole() {
	id := s.seedCustomer("ann@example.com")

	c, err := s.accounts.FindCredentials(s.ctx, domain.RoleCustomer, "ann@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(c)
	s.Equal(id, c.ID)
	s.True(c.IsActive)

	c, err = s.accounts.FindCredentials(s.ctx, domain.RoleRestaurant, "ann@example.com")
	s.Require().NoError(err)
	s.Nil(c)

	c, err = s.accounts.GetCredentials(s.ctx, domain.Principal{ID: id, Role: domain.RoleAdmin})
	s.Require().NoError(err)
	s.Nil(c, "customer row must not authenticate an admin token")
}

func (s *MarketplaceSuite) TestAccounts_EnsureAdminOnce() {
	u := &domain.User{Name: "Root", Email: "root@example.com", PasswordHash: "h"}

	created, err := s.accounts.EnsureAdmin(s.ctx, u)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.accounts.EnsureAdmin(s.ctx, u)
	s.Require().NoError(err)
	s.False(created)

	c, err := s.accounts.FindCredentials(s.ctx, domain.RoleAdmin, "root@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(c)
	s.Equal(domain.RoleAdmin, c.Role)
}

func (s *MarketplaceSuite) TestRestaurants_ListFilterAndMenu() {
	italian := s.seedRestaurant("it@example.com", "Italian", "Pizza")
	s.seedRestaurant("jp@example.com", "Japanese")
	s.seedItem(italian, "Margherita", 900)

	all, err := s.restaurants.List(s.ctx, domain.RestaurantFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)

	list, err := s.restaurants.List(s.ctx, domain.RestaurantFilter{Cuisine: "italian"})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(italian, list[0].ID)
	s.Require().Len(list[0].Menu, 1)
	s.Equal(int64(900), list[0].Menu[0].PriceCents)
}

func (s *MarketplaceSuite) TestRestaurants_MenuItemScopedToOwner() {
	owner := s.seedRestaurant("a@example.com")
	other := s.seedRestaurant("b@example.com")
	itemID := s.seedItem(owner, "Soup", 500)

	price := int64(650)
	ok, err := s.restaurants.UpdateMenuItem(s.ctx, domain.PartialMenuItemUpdate{ID: itemID, RestaurantID: other, PriceCents: &price})
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.restaurants.UpdateMenuItem(s.ctx, domain.PartialMenuItemUpdate{ID: itemID, RestaurantID: owner, PriceCents: &price})
	s.Require().NoError(err)
	s.True(ok)

	it, err := s.restaurants.GetMenuItem(s.ctx, owner, itemID)
	s.Require().NoError(err)
	s.Require().NotNil(it)
	s.Equal(price, it.PriceCents)
	s.Equal("Soup", it.Name)

	ok, err = s.restaurants.DeleteMenuItem(s.ctx, other, itemID)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.restaurants.DeleteMenuItem(s.ctx, owner, itemID)
	s.Require().NoError(err)
	s.True(ok)

	rest, err := s.restaurants.Get(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(rest.Menu)
}

func (s *MarketplaceSuite) TestOrders_CreateAndGet() {
	customer := s.seedCustomer("ann@example.com")
	rest := s.seedRestaurant("it@example.com")
	item := s.seedItem(rest, "Carbonara", 1250)

	id := s.seedOrder(customer, rest, item)

	o, err := s.orders.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(o)
	s.Equal(int64(2500), o.TotalCents)
	s.Equal(domain.OrderPending, o.Status)
	s.Require().Len(o.Items, 1)
	s.Equal(2, o.Items[0].Quantity)
	s.Equal("Ann", o.Customer.Name)
	s.Equal("Pasta Place", o.Restaurant.Name)
	s.Nil(o.Courier)

	missing, err := s.orders.Get(s.ctx, id+100)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *MarketplaceSuite) TestOrders_LifecycleAndAssign() {
	customer := s.seedCustomer("ann@example.com")
	rest := s.seedRestaurant("it@example.com")
	other := s.seedRestaurant("other@example.com")
	courier := s.seedCourier("bob@example.com")
	id := s.seedOrder(customer, rest, s.seedItem(rest, "Carbonara", 1250))

	ok, err := s.orders.UpdateStatus(s.ctx, id, domain.TransitionScope{RestaurantID: other},
		domain.RestaurantSources(domain.OrderConfirmed), domain.OrderConfirmed)
	s.Require().NoError(err)
	s.False(ok, "foreign restaurant must not move the order")

	for _, to := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady} {
		ok, err = s.orders.UpdateStatus(s.ctx, id, domain.TransitionScope{RestaurantID: rest},
			domain.RestaurantSources(to), to)
		s.Require().NoError(err)
		s.Require().True(ok, "to %s", to)
	}

	available, err := s.orders.List(s.ctx, domain.OrderQuery{Available: true})
	s.Require().NoError(err)
	s.Require().Len(available, 1)

	ok, err = s.orders.Assign(s.ctx, id, courier)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.orders.Assign(s.ctx, id, courier)
	s.Require().NoError(err)
	s.False(ok, "already assigned")

	ok, err = s.orders.UpdateStatus(s.ctx, id, domain.TransitionScope{CourierID: courier},
		domain.CourierSources(domain.OrderDelivered), domain.OrderDelivered)
	s.Require().NoError(err)
	s.True(ok)

	o, err := s.orders.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.OrderDelivered, o.Status)
	s.NotNil(o.DeliveredAt)
	s.Require().NotNil(o.Courier)
	s.Equal("Bob", o.Courier.Name)

	mine, err := s.orders.List(s.ctx, domain.OrderQuery{CourierID: courier})
	s.Require().NoError(err)
	s.Len(mine, 1)

	available, err = s.orders.List(s.ctx, domain.OrderQuery{Available: true})
	s.Require().NoError(err)
	s.Empty(available)
}

func (s *MarketplaceSuite) TestOrders_ListRequiresScope() {
	_, err := s.orders.List(s.ctx, domain.OrderQuery{})
	s.Require().ErrorIs(err, apperr.ErrInvalid)
}

func (s *MarketplaceSuite) TestOrders_History() {
	customer := s.seedCustomer("ann@example.com")
	rest := s.seedRestaurant("it@example.com")
	id := s.seedOrder(customer, rest, s.seedItem(rest, "Carbonara", 1250))

	t0 := time.Now().UTC().Truncate(time.Millisecond)
	s.Require().NoError(s.orders.AppendEvent(s.ctx, domain.OrderEvent{OrderID: id, Status: domain.OrderPending, OccurredAt: t0}))
	s.Require().NoError(s.orders.AppendEvent(s.ctx, domain.OrderEvent{OrderID: id, Status: domain.OrderConfirmed, OccurredAt: t0.Add(time.Second)}))
	// redelivery of the same status after a worker retry
	s.Require().NoError(s.orders.AppendEvent(s.ctx, domain.OrderEvent{OrderID: id, Status: domain.OrderConfirmed, OccurredAt: t0.Add(2 * time.Second)}))

	err := s.orders.AppendEvent(s.ctx, domain.OrderEvent{OrderID: id + 100, Status: domain.OrderPending, OccurredAt: t0})
	s.Require().ErrorIs(err, apperr.ErrNotFound)

	h, err := s.orders.History(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(h, 2)
	s.Equal(domain.OrderPending, h[0].Status)
	s.Equal(domain.OrderConfirmed, h[1].Status)
}

func (s *MarketplaceSuite) TestCouriers_Availability() {
	id := s.seedCourier("bob@example.com")

	ok, err := s.couriers.SetAvailability(s.ctx, id, false)
	s.Require().NoError(err)
	s.True(ok)

	c, err := s.couriers.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(c)
	s.False(c.IsAvailable)

	ok, err = s.couriers.SetAvailability(s.ctx, id+100, true)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *MarketplaceSuite) TestTickets_OwnerFilterAndUpdate() {
	owner := domain.Principal{ID: 7, Role: domain.RoleCustomer}
	mine := &domain.Ticket{
		Owner: &owner, Name: "Ann", Email: "ann@example.com", Subject: "Late", Message: "Where is it",
		Category: domain.CategoryDelivery, Status: domain.TicketOpen, Priority: domain.PriorityHigh,
	}
	_, err := s.tickets.Create(s.ctx, mine)
	s.Require().NoError(err)

	anon := &domain.Ticket{
		Name: "Guest", Email: "g@example.com", Subject: "Hi", Message: "Question",
		Category: domain.CategoryOther, Status: domain.TicketOpen, Priority: domain.PriorityMedium,
	}
	_, err = s.tickets.Create(s.ctx, anon)
	s.Require().NoError(err)

	list, err := s.tickets.ListByOwner(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.True(list[0].OwnedBy(owner))

	list, err = s.tickets.ListByOwner(s.ctx, domain.Principal{ID: 7, Role: domain.RoleDelivery})
	s.Require().NoError(err)
	s.Empty(list)

	list, err = s.tickets.List(s.ctx, domain.TicketFilter{Priority: domain.PriorityHigh})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(mine.ID, list[0].ID)

	list, err = s.tickets.List(s.ctx, domain.TicketFilter{})
	s.Require().NoError(err)
	s.Len(list, 2)

	status := domain.TicketResolved
	resp := "Delivered now"
	at := time.Now().UTC()
	ok, err := s.tickets.Update(s.ctx, domain.TicketUpdate{ID: anon.ID, Status: &status, AdminResponse: &resp, ResponseDate: &at})
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.tickets.Get(s.ctx, anon.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Nil(got.Owner)
	s.Equal(domain.TicketResolved, got.Status)
	s.Equal(domain.PriorityMedium, got.Priority)
	s.Equal(resp, got.AdminResponse)
	s.NotNil(got.ResponseDate)

	ok, err = s.tickets.Update(s.ctx, domain.TicketUpdate{ID: anon.ID + 100, Status: &status})
	s.Require().NoError(err)
	s.False(ok)
}
