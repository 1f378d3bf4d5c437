package registration

import (
	"net/http"

	"github.com/aanand-mishra/registration-form/internal/form"
)

// Routes registers every registration endpoint on a new ServeMux.
//
// Route table:
//
//	GET  /              → empty form page
//	POST /              → submit the page
//	POST /validate      → live validation for the page script
//	POST /api/register  → submit a JSON record
//	POST /api/validate  → validate a JSON record
//	GET  /healthz       → liveness
func Routes(f *form.Form) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", Page())
	router.HandleFunc("POST /{$}", Submit(f))
	router.HandleFunc("POST /validate", Validate(f))
	router.HandleFunc("POST /api/register", Register(f))
	router.HandleFunc("POST /api/validate", ValidateRecord(f))
	router.HandleFunc("GET /healthz", Health())

	return router
}
