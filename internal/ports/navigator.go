package ports

// Routes the coordinators can navigate to.
const (
	RouteLogin  = "/login"
	RouteSignup = "/signup"
	RouteFeed   = "/feed"
)

// Navigator receives navigation signals from the data layer. The
// gateway and coordinators never perform presentation side effects
// themselves; they emit a route and the UI decides what to do with it.
type Navigator interface {
	NavigateTo(route string)

	// RecordIntended remembers the route the user tried to reach
	// before being sent to login; ConsumeIntended hands it back once.
	RecordIntended(route string)
	ConsumeIntended() (string, bool)
}

// NopNavigator discards all navigation signals.
type NopNavigator struct{}

var _ Navigator = NopNavigator{}

func (NopNavigator) NavigateTo(string)               {}
func (NopNavigator) RecordIntended(string)           {}
func (NopNavigator) ConsumeIntended() (string, bool) { return "", false }
