package routes

import (
	"crypto/ecdsa"
	"encoding/json"
	"net/http"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models/dto"

	structValidator "github.com/go-playground/validator/v10"
)

// Route holds the handlers' shared dependencies. Handlers translate domain
// outcomes to status codes; everything unexpected becomes a generic 500 with
// the detail logged server-side only.
type Route struct {
	Metrics      interfaces.Metrics
	UserService  interfaces.UserService
	MovieService interfaces.CatalogService
	PrivateKey   *ecdsa.PrivateKey
	Logger       interfaces.Logger
	validator    *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService,
	movieService interfaces.CatalogService, privateKey *ecdsa.PrivateKey,
	validator *structValidator.Validate, logger interfaces.Logger,
) *Route {
	return &Route{
		Metrics:      metrics,
		UserService:  userService,
		MovieService: movieService,
		PrivateKey:   privateKey,
		Logger:       logger,
		validator:    validator,
	}
}

// Welcome handles GET /.
func (r *Route) Welcome(w http.ResponseWriter, req *http.Request) {
	w.Header().Set(ContentType, "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(MsgWelcome))
}

// respondJSON writes the payload with the given status. A nil payload
// serializes as a JSON null, which the movie-by-title lookup relies on for
// its empty result representation.
func (r *Route) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "error", err)
	}
}

// errorResponse writes the uniform error body. Internal detail never reaches
// the caller; err.Error() here is the domain-level message only.
func (r *Route) errorResponse(w http.ResponseWriter, status int, err error, message string) {
	body := dto.ErrorResponse{
		Message: message,
	}
	if err != nil {
		body.Error = err.Error()
	}
	r.respondJSON(w, status, body)
}

// validationResponse aggregates every violated field into one response
// instead of failing on the first.
func (r *Route) validationResponse(w http.ResponseWriter, status int, errs structValidator.ValidationErrors, message string) {
	violations := make([]dto.FieldViolation, 0, len(errs))
	for _, fieldErr := range errs {
		violations = append(violations, dto.FieldViolation{
			Field:      fieldErr.Field(),
			Constraint: fieldErr.Tag(),
		})
	}
	r.respondJSON(w, status, dto.ErrorResponse{
		Error:      ErrValidationFailed,
		Message:    message,
		Violations: violations,
	})
}

// fault maps an unexpected error to a generic 500. The cause is logged, not
// returned.
func (r *Route) fault(w http.ResponseWriter, err error, context string) {
	r.Logger.Error(context, "error", err)
	r.errorResponse(w, http.StatusInternalServerError, nil, ErrInternal)
}

func (r *Route) incCounter(name string) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(name)
	}
}

func (r *Route) observeHistogram(name string, value float64) {
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(name, value)
	}
}
