// Package authz holds the single role/action permission matrix. Every
// handler consults Allowed through the role-gate middleware instead of
// checking roles inline.
package authz

import "github.com/nafru/exportdesk/internal/domain/model"

// Action identifies an operation subject to role checks.
type Action string

const (
	ActionCreateCustomer   Action = "customer:create"
	ActionListCustomers    Action = "customer:list"
	ActionCreateOrder      Action = "order:create"
	ActionListOrders       Action = "order:list"
	ActionCreateShipment   Action = "shipment:create"
	ActionListShipments    Action = "shipment:list"
	ActionGenerateDocument Action = "document:generate"
	ActionListDocuments    Action = "document:list"
	ActionCreateProduct    Action = "product:create"
	ActionListProducts     Action = "product:list"
)

var operational = map[model.Role]bool{
	model.RoleAdmin: true,
	model.RoleTeam:  true,
}

var permissions = map[Action]map[model.Role]bool{
	ActionCreateCustomer:   operational,
	ActionCreateOrder:      operational,
	ActionCreateShipment:   operational,
	ActionGenerateDocument: operational,
	ActionCreateProduct:    operational,

	ActionListCustomers: anyAuthenticated,
	ActionListOrders:    anyAuthenticated,
	ActionListShipments: anyAuthenticated,
	ActionListDocuments: anyAuthenticated,
	ActionListProducts:  anyAuthenticated,
}

var anyAuthenticated = map[model.Role]bool{
	model.RoleAdmin:    true,
	model.RoleTeam:     true,
	model.RoleBuyer:    true,
	model.RoleSupplier: true,
}

// Allowed reports whether the role may perform the action. Unknown roles and
// unknown actions are denied.
func Allowed(role model.Role, action Action) bool {
	roles, ok := permissions[action]
	if !ok {
		return false
	}
	return roles[role]
}
