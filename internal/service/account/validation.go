package account

import (
	"reflect"
	"strings"

	"gopkg.in/go-playground/validator.v9"

	"food-marketplace/internal/domain"
)

type customerForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

type restaurantForm struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6,max=72"`
	Phone    string   `json:"phone" validate:"required"`
	Address  string   `json:"address" validate:"required"`
	Cuisine  []string `json:"cuisine" validate:"required,min=1,dive,required"`
}

type courierForm struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
	Phone         string `json:"phone" validate:"required"`
	VehicleType   string `json:"vehicle_type" validate:"required,vehicle_type"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

func vehicleType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return domain.VehicleType(fl.Field().String()).Valid()
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	_ = v.RegisterValidation("vehicle_type", vehicleType)
	return v
}

// formFor returns the role-specific struct to validate in.
func formFor(role domain.Role, in RegisterInput) (any, bool) {
	switch role {
	case domain.RoleCustomer:
		return customerForm{
			Name: in.Name, Email: in.Email, Password: in.Password, Phone: in.Phone, Address: in.Address,
		}, true
	case domain.RoleRestaurant:
		return restaurantForm{
			Name: in.Name, Email: in.Email, Password: in.Password, Phone: in.Phone, Address: in.Address,
			Cuisine: in.Cuisine,
		}, true
	case domain.RoleDelivery:
		return courierForm{
			Name: in.Name, Email: in.Email, Password: in.Password, Phone: in.Phone,
			VehicleType: in.VehicleType, VehicleNumber: in.VehicleNumber,
		}, true
	}
	return nil, false
}
