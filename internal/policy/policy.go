// Package policy is the single access-control table for the client.
//
// Every navigation goes through [Decide]; per-view role checks go through
// [CanManageProjects]. Keeping both here, instead of ad hoc role comparisons
// scattered across screens, means the screens cannot drift from the table.
// Decisions are pure functions of the session snapshot and the requested
// route — there is no memory of prior navigation, and the caller re-decides
// after every session change so a logout redirects on the next render.
package policy

import "github.com/pixelforge/nexus-tui/models"

// Route identifies a navigable view by its canonical path.
type Route string

const (
	RouteLogin         Route = "/login"
	RouteRegister      Route = "/register"
	RouteHome          Route = "/"
	RouteProjects      Route = "/products"
	RouteProjectDetail Route = "/products/:id"
	RouteCreateProject Route = "/create-product"
	RouteEditProject   Route = "/create-product/:id"
	RouteAccount       Route = "/profile"
)

// Action is the outcome of an access decision.
type Action int

const (
	// Render allows the requested view to mount.
	Render Action = iota
	// RedirectLogin sends the navigation to the login view.
	RedirectLogin
	// RedirectHome sends the navigation to the home view.
	RedirectHome
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Action Action
	// Target is the route to mount: the requested route for Render, or
	// the redirect destination otherwise.
	Target Route
}

// Decide evaluates the access table for the requested route against the
// session snapshot.
//
//	route class     | unauthenticated | member        | admin
//	login/register  | render          | redirect home | redirect home
//	home            | redirect login  | render        | render
//	products/detail | redirect login  | render        | render
//	create/edit     | redirect login  | redirect home | render
//	account         | redirect login  | render        | render
//	unknown         | redirect login  | redirect home | redirect home
func Decide(route Route, s models.Session) Decision {
	authenticated := s.Authenticated()

	switch route {
	case RouteLogin, RouteRegister:
		if authenticated {
			return Decision{Action: RedirectHome, Target: RouteHome}
		}
		return Decision{Action: Render, Target: route}

	case RouteHome, RouteProjects, RouteProjectDetail, RouteAccount:
		if !authenticated {
			return Decision{Action: RedirectLogin, Target: RouteLogin}
		}
		return Decision{Action: Render, Target: route}

	case RouteCreateProject, RouteEditProject:
		if !authenticated {
			return Decision{Action: RedirectLogin, Target: RouteLogin}
		}
		if !s.IsAdmin() {
			return Decision{Action: RedirectHome, Target: RouteHome}
		}
		return Decision{Action: Render, Target: route}

	default:
		if !authenticated {
			return Decision{Action: RedirectLogin, Target: RouteLogin}
		}
		return Decision{Action: RedirectHome, Target: RouteHome}
	}
}

// CanManageProjects reports whether the session may create, edit or delete
// project records. Only admins can.
func CanManageProjects(s models.Session) bool {
	return s.Authenticated() && s.IsAdmin()
}
