// Package navigation decides which view an identity may reach.
//
// The state is (authenticated, role, store linkage); Resolve maps that state and
// the requested view to the view actually shown.
package navigation

import "acai/internal/domain/entity"

// View is a destination screen of the marketplace client.
type View string

const (
	ViewLanding        View = "landing"
	ViewAuth           View = "auth"
	ViewRoleSelection  View = "role_selection"
	ViewAdminDashboard View = "admin_dashboard"
	ViewStoreSetup     View = "store_setup"
	ViewCustomerHome   View = "customer_home"
	ViewAcaiBuilder    View = "acai_builder"
)

// State is what the router needs to know about the current identity.
type State struct {
	Authenticated bool
	Role          entity.Role // empty for a provisional identity
	HasStore      bool
	StoreSelected bool // a store was picked for the bowl builder
}

// StateOf builds the router state for a user. A nil user is anonymous.
func StateOf(user *entity.User, storeSelected bool) State {
	if user == nil {
		return State{}
	}

	return State{
		Authenticated: true,
		Role:          user.Role,
		HasStore:      user.StoreID != nil,
		StoreSelected: storeSelected,
	}
}

type stateKey struct {
	authenticated bool
	role          entity.Role
	hasStore      bool
}

// allowed lists the views reachable from each state. The first entry is the
// home view used when the requested one is not allowed.
var allowed = map[stateKey][]View{
	{authenticated: false}:                                           {ViewLanding, ViewAuth},
	{authenticated: true}:                                            {ViewRoleSelection},
	{authenticated: true, hasStore: true}:                            {ViewRoleSelection},
	{authenticated: true, role: entity.RoleAdmin}:                    {ViewAdminDashboard},
	{authenticated: true, role: entity.RoleAdmin, hasStore: true}:    {ViewAdminDashboard},
	{authenticated: true, role: entity.RoleStore}:                    {ViewStoreSetup},
	{authenticated: true, role: entity.RoleStore, hasStore: true}:    {ViewCustomerHome, ViewAcaiBuilder},
	{authenticated: true, role: entity.RoleCustomer}:                 {ViewCustomerHome, ViewAcaiBuilder},
	{authenticated: true, role: entity.RoleCustomer, hasStore: true}: {ViewCustomerHome, ViewAcaiBuilder},
}

// Home is the view an identity lands on after login.
func Home(s State) View {
	return Allowed(s)[0]
}

// Allowed returns the views reachable from s.
func Allowed(s State) []View {
	views, ok := allowed[stateKey{authenticated: s.Authenticated, role: s.Role, hasStore: s.HasStore}]
	if !ok {
		return []View{ViewLanding}
	}

	return views
}

// Resolve returns requested when it is reachable from s, otherwise the home view.
// The bowl builder additionally needs a selected store.
func Resolve(s State, requested View) View {
	if requested == "" {
		return Home(s)
	}
	if requested == ViewAcaiBuilder && !s.StoreSelected {
		return Home(s)
	}
	for _, v := range Allowed(s) {
		if v == requested {
			return v
		}
	}

	return Home(s)
}
