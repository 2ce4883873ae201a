package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

//go:generate moq -out case_service_mock_test.go -pkg rest . caseService
//go:generate moq -out curator_service_mock_test.go -pkg rest . curatorService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out locale_service_mock_test.go -pkg rest . localeService

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func sampleCase(number string, status domain.CaseStatus) *domain.Case {
	created := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	return &domain.Case{
		ID:                 uuid.New(),
		CaseNumber:         number,
		FirstName:          "Omar",
		LastName:           "Haddad",
		FirstNameAr:        strPtr("عمر"),
		LastNameAr:         strPtr("حداد"),
		Age:                24,
		Gender:             domain.GenderMale,
		LastSeenLocation:   "Damascus",
		LastSeenLocationAr: strPtr("دمشق"),
		DateMissing:        time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		DescriptionEn:      "Last seen near the old market.",
		DescriptionAr:      "شوهد آخر مرة قرب السوق القديم.",
		Status:             status,
		Evidence:           []string{},
		Timeline: []domain.TimelineEvent{{
			ID:      uuid.New(),
			Date:    time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
			TitleEn: "Reported",
			TitleAr: "تم الإبلاغ",
		}},
		Contact:   strPtr("+963 11 000 0000"),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func withLang(r *http.Request, lang domain.Language) *http.Request {
	return r.WithContext(ctxutil.WithLanguage(r.Context(), lang))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return v
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]any](t, rec)["error"].(string)
}
