package routes

const (
	PathPing         = "/ping"
	PathAuth         = "/auth"
	PathUser         = "/user"
	PathAddress      = "/address"
	PathSolicitation = "/solicitation"
	PathChat         = "/chat"
	PathEvents       = "/sse/events"
	PathBilling      = "/billing"
)
