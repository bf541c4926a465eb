package domain

import "time"

// Audit actions recorded by the auth subsystem.
const (
	AuditRegister     = "register"
	AuditLoginSuccess = "login_success"
	AuditLoginFailure = "login_failure"
	AuditLogout       = "logout"
)

// AuthEvent is an audit record of an authentication action. Events are
// persisted asynchronously; losing one on shutdown is acceptable, delaying a
// login response to write one is not. Register and login events carry the
// email from the request; logout carries the token subject instead, since a
// logout request has no email of its own.
type AuthEvent struct {
	Email     string    `bson:"email,omitempty"`
	Subject   string    `bson:"subject,omitempty"`
	Action    string    `bson:"action"`
	RemoteIP  string    `bson:"remote_ip,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

// Actor identifies who the event is about: the email when the action is
// keyed by one, the token subject otherwise.
func (e AuthEvent) Actor() string {
	if e.Email != "" {
		return e.Email
	}
	return e.Subject
}
