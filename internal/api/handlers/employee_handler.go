package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/isandoval/staffdesk-be/internal/api/respond"
	"github.com/isandoval/staffdesk-be/internal/models"
	"github.com/isandoval/staffdesk-be/internal/services"
	"github.com/isandoval/staffdesk-be/internal/validation"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing.
const maxUploadMemory = 10 << 20

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service   services.EmployeeServiceProvider
	uploadDir string
}

// NewEmployeeHandler creates a new EmployeeHandler. Uploaded profile
// pictures are stored under uploadDir and served back at /uploads.
func NewEmployeeHandler(service services.EmployeeServiceProvider, uploadDir string) *EmployeeHandler {
	return &EmployeeHandler{service: service, uploadDir: uploadDir}
}

var createEmployeeRules = validation.Chain{
	validation.Field{Name: "first_name", Rules: []validation.Rule{
		validation.Required("first_name is required"),
	}},
	validation.Field{Name: "last_name", Rules: []validation.Rule{
		validation.Required("last_name is required"),
	}},
	validation.Field{Name: "email", Rules: []validation.Rule{
		validation.Email("valid email is required"),
	}},
	validation.Field{Name: "position", Rules: []validation.Rule{
		validation.Required("position is required"),
	}},
	validation.Field{Name: "salary", Rules: []validation.Rule{
		validation.Numeric("salary must be a number"),
	}},
	validation.Field{Name: "date_of_joining", Rules: []validation.Rule{
		validation.Date("date_of_joining must be a valid date"),
	}},
	validation.Field{Name: "department", Rules: []validation.Rule{
		validation.Required("department is required"),
	}},
}

var updateEmployeeRules = validation.Chain{
	validation.Field{Name: "email", Optional: true, Rules: []validation.Rule{
		validation.Email("invalid email"),
	}},
	validation.Field{Name: "salary", Optional: true, Rules: []validation.Rule{
		validation.Numeric("salary must be a number"),
	}},
	validation.Field{Name: "date_of_joining", Optional: true, Rules: []validation.Rule{
		validation.Date("invalid date"),
	}},
}

// formValues adapts a parsed request form to validation.Values.
type formValues struct {
	r *http.Request
}

func (f formValues) Get(name string) string { return f.r.FormValue(name) }
func (f formValues) Has(name string) bool   { return f.r.Form.Has(name) }

// parseForm parses the request body as multipart form data, falling back to
// a urlencoded form when no multipart boundary is present.
func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// List returns all employee records in their public shape, newest first.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list employees")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	respond.JSON(w, http.StatusOK, toPublic(employees))
}

// Search filters employees by department and/or position. Each provided
// term matches as a case-insensitive substring; with no terms the result is
// identical to List.
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	position := r.URL.Query().Get("position")

	employees, err := h.service.Search(r.Context(), department, position)
	if err != nil {
		log.Error().Err(err).Msg("Failed to search employees")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	respond.JSON(w, http.StatusOK, toPublic(employees))
}

// Create validates the submitted form, stores an optional profile picture
// and persists the new employee record.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := createEmployeeRules.Validate(formValues{r}); verr != nil {
		respond.Error(w, http.StatusBadRequest, verr.Message)
		return
	}

	salary, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue("salary")), 64)
	joined, _ := validation.ParseDate(r.FormValue("date_of_joining"))

	emp := models.Employee{
		FirstName:     strings.TrimSpace(r.FormValue("first_name")),
		LastName:      strings.TrimSpace(r.FormValue("last_name")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Position:      strings.TrimSpace(r.FormValue("position")),
		Salary:        salary,
		DateOfJoining: joined,
		Department:    strings.TrimSpace(r.FormValue("department")),
	}

	picture, err := h.saveUpload(r)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store uploaded file")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	emp.ProfilePicture = picture

	created, err := h.service.Create(r.Context(), emp)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create employee")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{
		"message":     "Employee created successfully.",
		"employee_id": created.ID.Hex(),
	})
}

// Get returns a single employee record. A malformed id is a 400 regardless
// of whether a matching record exists; a well-formed but unknown id is a 404.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "eid"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid employee id")
		return
	}

	emp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respond.Error(w, http.StatusNotFound, "Employee not found")
			return
		}
		log.Error().Err(err).Str("employee_id", id.Hex()).Msg("Failed to fetch employee")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond.JSON(w, http.StatusOK, emp.Public())
}

// Update merges the supplied fields into an existing record. Only fields
// present in the form change; a newly uploaded file replaces the profile
// picture reference.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "eid"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid employee id")
		return
	}

	if err := parseForm(r); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := updateEmployeeRules.Validate(formValues{r}); verr != nil {
		respond.Error(w, http.StatusBadRequest, verr.Message)
		return
	}

	fields := bson.M{}
	for _, name := range []string{"first_name", "last_name", "email", "position", "department"} {
		if value := strings.TrimSpace(r.FormValue(name)); value != "" {
			fields[name] = value
		}
	}
	if value := strings.TrimSpace(r.FormValue("salary")); value != "" {
		salary, _ := strconv.ParseFloat(value, 64)
		fields["salary"] = salary
	}
	if value := strings.TrimSpace(r.FormValue("date_of_joining")); value != "" {
		joined, _ := validation.ParseDate(value)
		fields["date_of_joining"] = joined
	}

	picture, err := h.saveUpload(r)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store uploaded file")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if picture != "" {
		fields["profile_picture"] = picture
	}

	if err := h.service.Update(r.Context(), id, fields); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respond.Error(w, http.StatusNotFound, "Employee not found")
			return
		}
		log.Error().Err(err).Str("employee_id", id.Hex()).Msg("Failed to update employee")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Employee details updated successfully.",
	})
}

// Delete removes an employee record by the eid query parameter. Deleting a
// well-formed id that does not exist still succeeds with 204.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(r.URL.Query().Get("eid"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid employee id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("employee_id", id.Hex()).Msg("Failed to delete employee")
		respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// saveUpload stores the optional profile_picture form file under the upload
// directory with a generated name and returns its public path. Returns an
// empty path when no file was uploaded.
func (h *EmployeeHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// toPublic converts records to the public response shape.
func toPublic(employees []models.Employee) []models.PublicEmployee {
	public := make([]models.PublicEmployee, 0, len(employees))
	for _, emp := range employees {
		public = append(public, emp.Public())
	}
	return public
}
