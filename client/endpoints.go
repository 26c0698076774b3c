package client

import "fmt"

// REST paths consumed by the services layer.
const (
	EndpointLogin    = "/login"
	EndpointSignup   = "/first-admin"
	EndpointLogout   = "/auth/logout"
	EndpointProfile  = "/auth/profile"
	EndpointPassword = "/auth/password"

	EndpointMenuItems      = "/menu-items"
	EndpointMenuCategories = "/menu-categories"
	EndpointOrders         = "/orders"
	EndpointTables         = "/restaurant-tables"
	EndpointStaff          = "/staff"
	EndpointPayments       = "/payments"
)

func EndpointMenuItem(id uint) string      { return fmt.Sprintf("%s/%d", EndpointMenuItems, id) }
func EndpointMenuCategory(id uint) string  { return fmt.Sprintf("%s/%d", EndpointMenuCategories, id) }
func EndpointOrder(id uint) string         { return fmt.Sprintf("%s/%d", EndpointOrders, id) }
func EndpointTable(id uint) string         { return fmt.Sprintf("%s/%d", EndpointTables, id) }
func EndpointStaffMember(id uint) string   { return fmt.Sprintf("%s/%d", EndpointStaff, id) }
func EndpointPayment(id uint) string       { return fmt.Sprintf("%s/%d", EndpointPayments, id) }
