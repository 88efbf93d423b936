package routes

var (
	SignupDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	LoginDurationSecondsBuckets  = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	WelcomeRouteAPI        = "/"
	MetricsRouteAPI        = "/metrics"
	LoginRouteAPI          = "/login"
	UsersRouteAPI          = "/users"
	UserByUsernameRouteAPI = "/users/{username}"
	UserByIDRouteAPI       = "/users/{id}"
	UserFavoriteRouteAPI   = "/users/{username}/movies/{title}"
	MoviesRouteAPI         = "/movies"
	DirectorsRouteAPI      = "/movies/directors"
	MovieByTitleRouteAPI   = "/movies/{title}"
	MoviesByGenreRouteAPI  = "/movies/genre/{genre}"
	DirectorByNameRouteAPI = "/movies/director/{name}"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// message constants
	MsgWelcome           = "Welcome to cine-verse API"
	MsgUserDeletedFormat = "%s was deleted."

	// Error messages
	ErrInvalidRequestBody     = "invalid request body"
	ErrValidationFailed       = "data validation failed"
	ErrFailedToEncodeResponse = "failed to encode response"
	ErrFailedToGenerateToken  = "failed to generate session token"
	ErrInvalidCredentials     = "invalid username or password"
	ErrInternal               = "internal server error"

	// metrics constants
	SignupRequestsTotal         = "signup_requests_total"
	SignupRequestsTotalHelp     = "Total number of signup requests received"
	SignupSuccessTotal          = "signup_success_total"
	SignupSuccessTotalHelp      = "Total number of successful signup requests"
	SignupErrorsTotal           = "signup_errors_total"
	SignupErrorsTotalHelp       = "Total number of errors during signup requests"
	SignupDurationSeconds       = "signup_duration_seconds"
	SignupDurationSecondsHelp   = "Duration of signup requests in seconds"
	LoginRequestsTotal          = "login_requests_total"
	LoginRequestsTotalHelp      = "Total number of login requests received"
	LoginSuccessTotal           = "login_success_total"
	LoginSuccessTotalHelp       = "Total number of successful login requests"
	LoginFailedTotal            = "login_failed_total"
	LoginFailedTotalHelp        = "Total number of failed login requests"
	LoginDurationSeconds        = "login_duration_seconds"
	LoginDurationSecondsHelp    = "Duration of login requests in seconds"
	LoginRateLimitedTotal       = "login_rate_limited_total"
	LoginRateLimitedTotalHelp   = "Total number of login requests that were rate limited"
	UsersRequestsTotal          = "users_requests_total"
	UsersRequestsTotalHelp      = "Total number of requests to user routes"
	UsersErrorsTotal            = "users_errors_total"
	UsersErrorsTotalHelp        = "Total number of errors on user routes"
	CatalogRequestsTotal        = "catalog_requests_total"
	CatalogRequestsTotalHelp    = "Total number of requests to movie and director routes"
	CatalogErrorsTotal          = "catalog_errors_total"
	CatalogErrorsTotalHelp      = "Total number of errors on movie and director routes"
)
