package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/internal/service/cases"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

type curatorService interface {
	List(ctx context.Context, input cases.ListInput) ([]domain.Case, error)
	UpdateStatus(ctx context.Context, caseNumber, rawStatus string) (*domain.Case, error)
	SetFlags(ctx context.Context, caseNumber string, flags domain.CaseFlags) (*domain.Case, error)
	AddEvidence(ctx context.Context, caseNumber, rawURL string) (*domain.Case, error)
	Publish(ctx context.Context, caseNumber string) (*domain.Case, error)
	AddTimelineEvent(ctx context.Context, caseNumber string, input cases.TimelineEventInput) (*domain.Case, error)
}

// AdminHandler serves the curator endpoints under /api/admin. Routes are
// expected to sit behind middleware.RequireAdmin; the service re-checks.
type AdminHandler struct {
	svc curatorService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc curatorService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type statusRequest struct {
	Status string `json:"status"`
}

type flagsRequest struct {
	IsUrgent   *bool `json:"isUrgent"`
	IsFeatured *bool `json:"isFeatured"`
}

type evidenceRequest struct {
	URL string `json:"url"`
}

type timelineRequest struct {
	Date          string  `json:"date"`
	TitleEn       string  `json:"titleEn"`
	TitleAr       string  `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
}

// ListCases handles GET /api/admin/cases. Unpublished cases are included.
func (h *AdminHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	input := listInputFromQuery(r)
	input.IncludeUnpublished = true

	list, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	lang := ctxutil.LanguageFromCtx(r.Context())
	out := make([]adminCaseView, 0, len(list))
	for i := range list {
		v, err := toAdminCaseView(&list[i], lang)
		if err != nil {
			h.log.WarnContext(r.Context(), "case without display labels",
				slog.String("case_number", list[i].CaseNumber),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateStatus handles PATCH /api/admin/cases/{caseNumber}/status.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respondCase(w, r)(h.svc.UpdateStatus(r.Context(), r.PathValue("caseNumber"), req.Status))
}

// SetFlags handles PATCH /api/admin/cases/{caseNumber}/flags.
func (h *AdminHandler) SetFlags(w http.ResponseWriter, r *http.Request) {
	var req flagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	flags := domain.CaseFlags{Urgent: req.IsUrgent, Featured: req.IsFeatured}
	h.respondCase(w, r)(h.svc.SetFlags(r.Context(), r.PathValue("caseNumber"), flags))
}

// AddEvidence handles POST /api/admin/cases/{caseNumber}/evidence.
func (h *AdminHandler) AddEvidence(w http.ResponseWriter, r *http.Request) {
	var req evidenceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respondCase(w, r)(h.svc.AddEvidence(r.Context(), r.PathValue("caseNumber"), req.URL))
}

// AddTimelineEvent handles POST /api/admin/cases/{caseNumber}/timeline.
func (h *AdminHandler) AddTimelineEvent(w http.ResponseWriter, r *http.Request) {
	var req timelineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var date time.Time
	if req.Date != "" {
		d, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("date", "must be YYYY-MM-DD"), "")
			return
		}
		date = d
	}

	h.respondCase(w, r)(h.svc.AddTimelineEvent(r.Context(), r.PathValue("caseNumber"), cases.TimelineEventInput{
		Date:          date,
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
	}))
}

// Publish handles POST /api/admin/cases/{caseNumber}/publish.
func (h *AdminHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.respondCase(w, r)(h.svc.Publish(r.Context(), r.PathValue("caseNumber")))
}

// respondCase returns a writer for the (case, error) result of a mutation.
func (h *AdminHandler) respondCase(w http.ResponseWriter, r *http.Request) func(*domain.Case, error) {
	return func(c *domain.Case, err error) {
		if err != nil {
			respondError(w, r, h.log, err, "")
			return
		}
		v, err := toAdminCaseView(c, ctxutil.LanguageFromCtx(r.Context()))
		if err != nil {
			respondError(w, r, h.log, err, "")
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}
