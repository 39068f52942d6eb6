package services

import "educonnect/models"

// DashboardKind selects which role dashboard to render.
type DashboardKind string

const (
	DashboardNone      DashboardKind = ""
	DashboardStudent   DashboardKind = "student"
	DashboardProfessor DashboardKind = "professor"
	DashboardAdmin     DashboardKind = "admin"
)

// PublicRoute is where visitors without a session are sent.
const PublicRoute = "/"

// Session is the part of the auth stub the dashboard needs.
type Session interface {
	IsAuthenticated() bool
	User() *models.User
}

// ResolveDashboard picks the dashboard for the signed-in user. Without a
// session it returns DashboardNone and the route to redirect to.
func ResolveDashboard(s Session) (DashboardKind, string) {
	u := s.User()
	if !s.IsAuthenticated() || u == nil {
		return DashboardNone, PublicRoute
	}
	switch u.UserType {
	case models.UserTypeStudent:
		return DashboardStudent, ""
	case models.UserTypeProfessor:
		return DashboardProfessor, ""
	default:
		return DashboardAdmin, ""
	}
}
