package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

const dateLayout = time.DateOnly

// caseView is the public JSON shape of a case. Bilingual source fields are
// kept alongside the values localized for the request language.
type caseView struct {
	ID                 string  `json:"id"`
	CaseNumber         string  `json:"caseNumber"`
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	FirstNameAr        *string `json:"firstNameAr,omitempty"`
	LastNameAr         *string `json:"lastNameAr,omitempty"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	Photo              *string `json:"photo,omitempty"`
	DateMissing        string  `json:"dateMissing"`
	LastSeenLocation   string  `json:"lastSeenLocation"`
	LastSeenLocationAr *string `json:"lastSeenLocationAr,omitempty"`
	DescriptionEn      string  `json:"descriptionEn"`
	DescriptionAr      string  `json:"descriptionAr"`
	Status             string  `json:"status"`
	IsUrgent           bool    `json:"isUrgent"`
	IsFeatured         bool    `json:"isFeatured"`

	Timeline []timelineView `json:"timeline"`
	Evidence []string       `json:"evidence"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	Display displayView `json:"display"`
}

// displayView holds the request-language rendering of a case.
type displayView struct {
	Lang        string `json:"lang"`
	Dir         string `json:"dir"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	StatusLabel string `json:"statusLabel"`
	StatusClass string `json:"statusClass"`
}

type timelineView struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	TitleEn       string  `json:"titleEn"`
	TitleAr       string  `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn,omitempty"`
	DescriptionAr *string `json:"descriptionAr,omitempty"`
	Title         string  `json:"title"`
	Body          string  `json:"body,omitempty"`
}

// adminCaseView adds fields that only curators may see.
type adminCaseView struct {
	caseView
	Contact   *string `json:"contact,omitempty"`
	Published bool    `json:"published"`
}

func toCaseView(c *domain.Case, lang domain.Language) (caseView, error) {
	label, err := domain.StatusLabel(c.Status, lang)
	if err != nil {
		return caseView{}, err
	}
	class, err := domain.StatusClass(c.Status)
	if err != nil {
		return caseView{}, err
	}

	v := caseView{
		ID:                 c.ID.String(),
		CaseNumber:         c.CaseNumber,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		FirstNameAr:        c.FirstNameAr,
		LastNameAr:         c.LastNameAr,
		Age:                c.Age,
		Gender:             c.Gender.String(),
		Photo:              c.Photo,
		DateMissing:        c.DateMissing.Format(dateLayout),
		LastSeenLocation:   c.LastSeenLocation,
		LastSeenLocationAr: c.LastSeenLocationAr,
		DescriptionEn:      c.DescriptionEn,
		DescriptionAr:      c.DescriptionAr,
		Status:             c.Status.String(),
		IsUrgent:           c.IsUrgent,
		IsFeatured:         c.IsFeatured,
		Timeline:           make([]timelineView, 0, len(c.Timeline)),
		Evidence:           c.Evidence,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		PublishedAt:        c.PublishedAt,
		Display: displayView{
			Lang:        lang.String(),
			Dir:         lang.Dir(),
			Name:        c.DisplayName(lang),
			Location:    c.DisplayLocation(lang),
			Description: c.Description(lang),
			StatusLabel: label,
			StatusClass: class,
		},
	}
	if v.Evidence == nil {
		v.Evidence = []string{}
	}
	for i := range c.Timeline {
		e := &c.Timeline[i]
		v.Timeline = append(v.Timeline, timelineView{
			ID:            e.ID.String(),
			Date:          e.Date.Format(dateLayout),
			TitleEn:       e.TitleEn,
			TitleAr:       e.TitleAr,
			DescriptionEn: e.DescriptionEn,
			DescriptionAr: e.DescriptionAr,
			Title:         e.Title(lang),
			Body:          e.Body(lang),
		})
	}
	return v, nil
}

func toAdminCaseView(c *domain.Case, lang domain.Language) (adminCaseView, error) {
	v, err := toCaseView(c, lang)
	if err != nil {
		return adminCaseView{}, err
	}
	return adminCaseView{caseView: v, Contact: c.Contact, Published: c.IsPublished()}, nil
}

// toCaseViews renders a list, dropping records that cannot be rendered.
func toCaseViews(r *http.Request, log *slog.Logger, cases []domain.Case, lang domain.Language) []caseView {
	out := make([]caseView, 0, len(cases))
	for i := range cases {
		v, err := toCaseView(&cases[i], lang)
		if err != nil {
			log.WarnContext(r.Context(), "skipping unrenderable case",
				slog.String("case_number", cases[i].CaseNumber),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, v)
	}
	return out
}

type statsView struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
	Urgent   int `json:"urgent"`
}

func toStatsView(st domain.CaseStats) statsView {
	return statsView{Total: st.Total, Active: st.Active, Resolved: st.Resolved, Urgent: st.Urgent}
}

type statusInfoView struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Class  string `json:"class"`
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserView(u *domain.User) userView {
	return userView{ID: u.ID.String(), Email: u.Email, Name: u.Name, Role: u.Role.String()}
}
