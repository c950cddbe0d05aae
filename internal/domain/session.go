package domain

// Session is the authenticated identity for one request. It is built
// from a validated token by the HTTP middleware, passed explicitly to
// services, and never shared across requests. A nil *Session means the
// request is unauthenticated.
type Session struct {
	UserID     int64
	Username   string
	IsEmployer bool
}
