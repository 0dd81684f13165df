package agriclient

import "errors"

// ErrNoSession is returned by RequireSession when no authenticated session
// can be hydrated. Callers treat it as "redirect to login".
var ErrNoSession = errors.New("not logged in")

// RequireSession hydrates the store and returns the current identity, or
// ErrNoSession. Call it at every guarded entry point.
func RequireSession(store *Store) (User, error) {
	store.InitAuth()
	if !store.IsAuthenticated() {
		return User{}, ErrNoSession
	}
	user, ok := store.User()
	if !ok {
		return User{}, ErrNoSession
	}
	return user, nil
}

// NavItem is a navigation entry shown to a logged-in user.
type NavItem struct {
	Label string
	Path  string
}

// NavItems selects the navigation entries for a role. The role only selects
// what is displayed; it is not an authorization boundary. The server enforces
// authority on every request regardless of what is listed here.
func NavItems(role string) []NavItem {
	switch role {
	case "volunteer":
		return []NavItem{
			{Label: "Dashboard", Path: "/volunteer/dashboard"},
			{Label: "My Profile", Path: "/volunteer/profile"},
		}
	case "admin", "superadmin":
		items := []NavItem{
			{Label: "Dashboard", Path: "/admin/dashboard"},
			{Label: "Applications", Path: "/admin/applications"},
			{Label: "Volunteers", Path: "/admin/volunteers"},
			{Label: "Gallery", Path: "/admin/gallery"},
			{Label: "Volunteer Calls", Path: "/admin/volunteer-calls"},
		}
		if role == "superadmin" {
			items = append(items, NavItem{Label: "System Users", Path: "/admin/users"})
		}
		return items
	default:
		return nil
	}
}
