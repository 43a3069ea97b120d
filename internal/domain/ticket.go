package domain

import "time"

type (
	// TicketCategory classifies a help-desk ticket.
	TicketCategory string
	// TicketStatus is the triage state of a ticket.
	TicketStatus string
	// TicketPriority orders tickets for admins.
	TicketPriority string
)

// List of possible ticket categories
const (
	CategoryOrder      TicketCategory = "order"
	CategoryPayment    TicketCategory = "payment"
	CategoryDelivery   TicketCategory = "delivery"
	CategoryRestaurant TicketCategory = "restaurant"
	CategoryTechnical  TicketCategory = "technical"
	CategoryOther      TicketCategory = "other"
)

// List of possible ticket statuses
const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// List of possible ticket priorities
const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// Valid checks if the TicketCategory is valid
func (c TicketCategory) Valid() bool {
	switch c {
	case CategoryOrder, CategoryPayment, CategoryDelivery, CategoryRestaurant, CategoryTechnical, CategoryOther:
		return true
	}
	return false
}

// Valid checks if the TicketStatus is valid
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// Valid checks if the TicketPriority is valid
func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Ticket is a help-desk request. Owner is nil for anonymous tickets.
type Ticket struct {
	ID            int64
	Owner         *Principal
	Name          string
	Email         string
	Phone         string
	Subject       string
	Message       string
	Category      TicketCategory
	Status        TicketStatus
	Priority      TicketPriority
	AdminResponse string
	ResponseDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnedBy reports whether p opened the ticket.
func (t *Ticket) OwnedBy(p Principal) bool {
	return t.Owner != nil && t.Owner.ID == p.ID && t.Owner.Role == p.Role
}

// TicketFilter narrows the admin ticket listing. Empty fields match everything.
type TicketFilter struct {
	Status   TicketStatus
	Category TicketCategory
	Priority TicketPriority
}

// TicketUpdate carries the admin-editable fields. Nil means unchanged.
type TicketUpdate struct {
	ID            int64
	Status        *TicketStatus
	Priority      *TicketPriority
	AdminResponse *string
	ResponseDate  *time.Time
}

// TicketNotification is broadcast when a ticket is opened or answered.
type TicketNotification struct {
	Kind      string         `json:"kind"`
	TicketID  int64          `json:"ticket_id"`
	Email     string         `json:"email"`
	Subject   string         `json:"subject"`
	Status    TicketStatus   `json:"status"`
	Priority  TicketPriority `json:"priority"`
	Response  string         `json:"response,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Notification kinds
const (
	NotificationTicketCreated = "ticket_created"
	NotificationTicketUpdated = "ticket_updated"
)
