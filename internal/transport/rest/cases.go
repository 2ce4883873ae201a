package rest

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/internal/service/cases"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

const (
	multipartMemory   = 8 << 20
	formOverheadBytes = 1 << 20

	submitFailedMessage = "could not submit the case, please try again later"
)

type caseService interface {
	List(ctx context.Context, input cases.ListInput) ([]domain.Case, error)
	Get(ctx context.Context, caseNumber string) (*domain.Case, error)
	Featured(ctx context.Context, limit int) ([]domain.Case, error)
	Stats(ctx context.Context) (domain.CaseStats, error)
	Submit(ctx context.Context, input cases.SubmitInput) (*domain.Case, error)
}

// CasesHandler serves the public case endpoints.
type CasesHandler struct {
	svc           caseService
	log           *slog.Logger
	maxPhotoBytes int64
}

// NewCasesHandler creates a CasesHandler.
func NewCasesHandler(svc caseService, maxPhotoBytes int64, logger *slog.Logger) *CasesHandler {
	return &CasesHandler{svc: svc, maxPhotoBytes: maxPhotoBytes, log: logger.With("handler", "cases")}
}

// List handles GET /api/cases.
func (h *CasesHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), listInputFromQuery(r))
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}
	lang := ctxutil.LanguageFromCtx(r.Context())
	writeJSON(w, http.StatusOK, toCaseViews(r, h.log, list, lang))
}

// Featured handles GET /api/cases/featured.
func (h *CasesHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list, err := h.svc.Featured(r.Context(), limit)
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}
	lang := ctxutil.LanguageFromCtx(r.Context())
	writeJSON(w, http.StatusOK, toCaseViews(r, h.log, list, lang))
}

// Get handles GET /api/cases/{caseNumber}.
func (h *CasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), r.PathValue("caseNumber"))
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}
	v, err := toCaseView(c, ctxutil.LanguageFromCtx(r.Context()))
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Stats handles GET /api/stats.
func (h *CasesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}
	writeJSON(w, http.StatusOK, toStatsView(st))
}

// Statuses handles GET /api/statuses.
func (h *CasesHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	catalog, err := domain.StatusCatalog(ctxutil.LanguageFromCtx(r.Context()))
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}
	out := make([]statusInfoView, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, statusInfoView{Status: s.Status.String(), Label: s.Label, Class: s.Class})
	}
	writeJSON(w, http.StatusOK, out)
}

// Submit handles POST /api/cases (multipart/form-data).
func (h *CasesHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoBytes+formOverheadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input, err := submitInputFromForm(r)
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	file, header, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid photo upload")
		return
	default:
		defer file.Close()
		input.Photo = photoInput(file, header)
	}

	c, err := h.svc.Submit(r.Context(), input)
	switch {
	case errors.Is(err, cases.ErrPhotoRequired):
		// Submission failures are all 500s; this one keeps its message.
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	case err != nil:
		respondError(w, r, h.log, err, submitFailedMessage)
		return
	}

	v, err := toCaseView(c, ctxutil.LanguageFromCtx(r.Context()))
	if err != nil {
		respondError(w, r, h.log, err, submitFailedMessage)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func listInputFromQuery(r *http.Request) cases.ListInput {
	q := r.URL.Query()
	return cases.ListInput{
		Query:     q.Get("q"),
		Status:    q.Get("status"),
		SortBy:    q.Get("sort"),
		SortOrder: q.Get("order"),
	}
}

// submitInputFromForm converts form values. Only conversion failures are
// reported here; field rules are enforced by the service.
func submitInputFromForm(r *http.Request) (cases.SubmitInput, error) {
	var errs []domain.FieldError

	age := -1
	if raw := strings.TrimSpace(r.FormValue("age")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "age", Message: "must be a whole number"})
		} else {
			age = n
		}
	} else {
		errs = append(errs, domain.FieldError{Field: "age", Message: "required"})
	}

	var dateMissing time.Time
	if raw := strings.TrimSpace(r.FormValue("dateMissing")); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "dateMissing", Message: "must be YYYY-MM-DD"})
		} else {
			dateMissing = d
		}
	}

	if len(errs) > 0 {
		return cases.SubmitInput{}, domain.NewValidationErrors(errs)
	}

	return cases.SubmitInput{
		FirstName:          r.FormValue("firstName"),
		LastName:           r.FormValue("lastName"),
		FirstNameAr:        optionalFormValue(r, "firstNameAr"),
		LastNameAr:         optionalFormValue(r, "lastNameAr"),
		Age:                age,
		Gender:             r.FormValue("gender"),
		LastSeenLocation:   r.FormValue("lastSeenLocation"),
		LastSeenLocationAr: optionalFormValue(r, "lastSeenLocationAr"),
		DateMissing:        dateMissing,
		DescriptionEn:      cmp.Or(r.FormValue("descriptionEn"), r.FormValue("description")),
		DescriptionAr:      r.FormValue("descriptionAr"),
		Contact:            optionalFormValue(r, "contact"),
	}, nil
}

func optionalFormValue(r *http.Request, key string) *string {
	if _, ok := r.MultipartForm.Value[key]; !ok {
		return nil
	}
	v := r.FormValue(key)
	return &v
}

func photoInput(file multipart.File, header *multipart.FileHeader) *cases.PhotoInput {
	return &cases.PhotoInput{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}
}
