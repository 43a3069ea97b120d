package domain

import "time"

// Role identifies the account type carried in bearer tokens.
type Role string

// List of possible roles
const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDelivery   Role = "delivery"
	RoleAdmin      Role = "admin"
)

// Valid checks if the Role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

// Registrable reports whether accounts of this role can sign up through the API.
// Admins are bootstrapped from configuration.
func (r Role) Registrable() bool {
	return r == RoleCustomer || r == RoleRestaurant || r == RoleDelivery
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   int64
	Role Role
}

// Is reports whether the principal has any of the given roles.
func (p Principal) Is(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// Credentials is the subset of an account needed to authenticate it.
type Credentials struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
}

// Profile is the public view of any account.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// User is a customer or an administrator.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VehicleType is the transport used by a courier.
type VehicleType string

// List of possible vehicle types
const (
	VehicleBike    VehicleType = "bike"
	VehicleCar     VehicleType = "car"
	VehicleBicycle VehicleType = "bicycle"
)

// Valid checks if the VehicleType is valid
func (v VehicleType) Valid() bool {
	return v == VehicleBike || v == VehicleCar || v == VehicleBicycle
}

// Courier is a delivery account.
type Courier struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	Phone         string
	VehicleType   VehicleType
	VehicleNumber string
	IsAvailable   bool
	Rating        float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
