// Package access decides what the current caller may do. Every gated route
// goes through Can; handlers never compare roles themselves.
package access

import (
	"context"

	"renovation-tracker/internal/data/entity"
	"renovation-tracker/pkg/utils"

	"github.com/google/uuid"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     entity.UserRole
}

// IdentitySource resolves the caller of a request. It hides how the
// session is carried (cookie, header) from the rest of the application.
type IdentitySource interface {
	CurrentIdentity(ctx context.Context) (*Identity, bool)
}

// Action is a capability checked by Can.
type Action string

const (
	ViewDashboard  Action = "view_dashboard"
	ListCustomers  Action = "list_customers"
	Logout         Action = "logout"
	CreateCustomer Action = "create_customer"
	UpdateStatus   Action = "update_status"
	EditCustomer   Action = "edit_customer"
	DeleteCustomer Action = "delete_customer"
	Export         Action = "export"
)

type requirement int

const (
	public requirement = iota
	authenticated
	admin
)

var requirements = map[Action]requirement{
	ViewDashboard:  public,
	ListCustomers:  authenticated,
	Logout:         authenticated,
	CreateCustomer: admin,
	UpdateStatus:   admin,
	EditCustomer:   admin,
	DeleteCustomer: admin,
	Export:         admin,
}

func IsAuthenticated(id *Identity) bool {
	return id != nil && id.UserID != uuid.Nil
}

func IsAdmin(id *Identity) bool {
	return IsAuthenticated(id) && id.Role == entity.RoleAdmin
}

// Can reports whether id may perform action. Unknown actions are denied.
func Can(id *Identity, action Action) bool {
	req, ok := requirements[action]
	if !ok {
		return false
	}

	switch req {
	case public:
		return true
	case authenticated:
		return IsAuthenticated(id)
	case admin:
		return IsAdmin(id)
	}
	return false
}

// RequiresLogin reports whether an anonymous caller could gain action by logging in.
func RequiresLogin(action Action) bool {
	req, ok := requirements[action]
	return ok && req != public
}

// ContextSource reads the identity stored in the request context by the
// session middleware.
type ContextSource struct{}

func (ContextSource) CurrentIdentity(ctx context.Context) (*Identity, bool) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, false
	}

	username, _ := utils.GetUsernameFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	return &Identity{
		UserID:   userID,
		Username: username,
		Role:     entity.UserRole(role),
	}, true
}

// WithIdentity stores id in ctx so ContextSource can find it.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return utils.SetUserContext(ctx, id.UserID, id.Username, string(id.Role))
}
