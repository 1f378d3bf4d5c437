// Package registration contains the HTTP handlers for the registration form.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The router expects func(http.ResponseWriter, *http.Request). To inject
// the form (validator + submitter) each exported function is a factory,
// called once at startup, returning the handler that runs per request:
//
//	router.HandleFunc("POST /api/register", registration.Register(f))
//
// Two surfaces share the same form:
//   - HTML: GET / renders the page, POST / submits it, POST /validate is
//     hit by the page script on every input event.
//   - JSON: POST /api/register and POST /api/validate take a FormRecord.
package registration

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/registration-form/internal/form"
	"github.com/aanand-mishra/registration-form/internal/types"
	"github.com/aanand-mishra/registration-form/internal/utils/response"
)

//go:embed templates/form.html
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "templates/form.html"))

// control describes one input on the page.
type control struct {
	Name  string
	Label string
	Type  string
}

var controls = []control{
	{types.FieldFirstName, "First Name", "text"},
	{types.FieldLastName, "Last Name", "text"},
	{types.FieldEmail, "Email", "email"},
	{types.FieldAge, "Age", "number"},
	{types.FieldPassword, "Password", "password"},
	{types.FieldConfirmPassword, "Confirm Password", "password"},
}

type fieldView struct {
	control
	Value     string
	Error     string
	KeepValue bool
}

type pageView struct {
	Fields    []fieldView
	Accepted  bool
	FormError string
}

func newPageView(s form.Snapshot) pageView {
	view := pageView{Accepted: s.Status == form.Accepted}
	for _, c := range controls {
		fv := fieldView{control: c}
		// An accepted form starts over empty.
		if !view.Accepted {
			fv.Value = s.Input[c.Name]
			fv.KeepValue = fv.Value != ""
			fv.Error = s.Errors[c.Name]
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

func render(w http.ResponseWriter, status int, view pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, view); err != nil {
		slog.Error("error rendering form", slog.String("error", err.Error()))
	}
}

// inputFromRequest collects the six control values from a form post.
func inputFromRequest(r *http.Request) (types.Input, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	in := make(types.Input, len(types.Fields))
	for _, name := range types.Fields {
		in[name] = r.PostForm.Get(name)
	}
	return in, nil
}

// decodeRecord reads a JSON FormRecord, mapping an empty body to a clear
// error.
func decodeRecord(r *http.Request) (types.FormRecord, error) {
	var record types.FormRecord
	err := json.NewDecoder(r.Body).Decode(&record)
	if errors.Is(err, io.EOF) {
		return record, errors.New("request body is empty")
	}
	return record, err
}

// Page handles GET / with an empty form.
func Page() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, newPageView(form.Snapshot{}))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Submit handles POST / from the HTML page.
//
//	200 OK                   — accepted, page re-rendered empty with a notice
//	422 Unprocessable Entity — page re-rendered with inline errors
//	400 Bad Request          — body could not be parsed as a form
//	500 Internal             — the submitter failed
//
// ─────────────────────────────────────────────────────────────────────────────
func Submit(f *form.Form) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("submitting registration form")

		in, err := inputFromRequest(r)
		if err != nil {
			http.Error(w, "malformed form body", http.StatusBadRequest)
			return
		}

		snap, err := f.Submit(r.Context(), form.Snapshot{Input: in})
		if err != nil {
			view := newPageView(snap)
			view.FormError = "Registration could not be submitted, please try again."
			render(w, http.StatusInternalServerError, view)
			return
		}

		if snap.Status != form.Accepted {
			render(w, http.StatusUnprocessableEntity, newPageView(snap))
			return
		}

		slog.Info("registration accepted", slog.String("email", snap.Record.Email))
		render(w, http.StatusOK, newPageView(snap))
	}
}

// Validate handles POST /validate, the live check the page runs on every
// input event. It always answers 200; the envelope says whether the input
// is acceptable.
func Validate(f *form.Form) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := inputFromRequest(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		snap := f.Validate(form.Snapshot{Input: in})
		if len(snap.Errors) > 0 {
			response.WriteJSON(w, http.StatusOK, response.ValidationError(snap.Errors))
			return
		}
		response.WriteJSON(w, http.StatusOK, response.OK())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Register handles POST /api/register
//
// Request body (JSON):
//
//	{ "firstName": "Jane", "lastName": "Doe", "email": "jane@doe.com",
//	  "age": 20, "password": "secret1", "confirmPassword": "secret1" }
//
// Success response (201 Created): the accepted record.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — the submitter failed
//
// ─────────────────────────────────────────────────────────────────────────────
func Register(f *form.Form) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("registering via api")

		record, err := decodeRecord(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		snap, err := f.Submit(r.Context(), form.Snapshot{Input: types.InputFromRecord(record)})
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		if snap.Status != form.Accepted {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(snap.Errors))
			return
		}

		slog.Info("registration accepted", slog.String("email", snap.Record.Email))
		response.WriteJSON(w, http.StatusCreated, snap.Record)
	}
}

// ValidateRecord handles POST /api/validate: the same check as /validate
// for JSON clients.
func ValidateRecord(f *form.Form) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := decodeRecord(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		snap := f.Validate(form.Snapshot{Input: types.InputFromRecord(record)})
		if len(snap.Errors) > 0 {
			response.WriteJSON(w, http.StatusOK, response.ValidationError(snap.Errors))
			return
		}
		response.WriteJSON(w, http.StatusOK, response.OK())
	}
}

// Health handles GET /healthz.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.OK())
	}
}
