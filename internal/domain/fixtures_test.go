package domain

import (
	"time"

	"github.com/google/uuid"
)

func ptr[T any](v T) *T { return &v }

// validCase returns a well-formed case with the given identity and status.
func validCase(caseNumber, first, last string, status CaseStatus) Case {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return Case{
		ID:               uuid.New(),
		CaseNumber:       caseNumber,
		FirstName:        first,
		LastName:         last,
		Age:              30,
		Gender:           GenderMale,
		LastSeenLocation: "Damascus",
		DateMissing:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DescriptionEn:    "Last seen near the old market.",
		DescriptionAr:    "شوهد آخر مرة قرب السوق القديم.",
		Status:           status,
		Evidence:         []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// scenarioCases is the two-record collection used across property tests.
func scenarioCases() []Case {
	return []Case{
		validCase("ATH-2024-0001", "Omar", "Ali", CaseStatusMissing),
		validCase("ATH-2024-0002", "Lina", "Saad", CaseStatusReturned),
	}
}

// mixedCases is a larger collection covering every status and both scripts.
func mixedCases() []Case {
	c1 := validCase("ATH-2024-1001", "Omar", "Haddad", CaseStatusKidnapped)
	c1.FirstNameAr = ptr("عمر")
	c1.LastNameAr = ptr("حداد")
	c1.LastSeenLocation = "Aleppo"
	c1.IsUrgent = true

	c2 := validCase("ATH-2024-1002", "Lina", "Saad", CaseStatusReturned)
	c2.FirstNameAr = ptr("لينا")
	c2.Gender = GenderFemale
	c2.IsFeatured = true

	c3 := validCase("ATH-2023-1003", "Sami", "Omari", CaseStatusRansom)
	c3.LastSeenLocation = "Homs"
	c3.IsFeatured = true
	c3.DateMissing = time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC)

	c4 := validCase("ATH-2024-1004", "Rami", "Khalil", CaseStatusKilled)
	c4.LastSeenLocation = "Idlib"
	c4.IsUrgent = true
	c4.IsFeatured = true

	c5 := validCase("ATH-2024-1005", "Nour", "Hassan", CaseStatusMissing)
	c5.LastNameAr = ptr("حسن")
	c5.Gender = GenderFemale
	c5.IsFeatured = true

	c6 := validCase("ATH-2022-1006", "Yusuf", "Darwish", CaseStatusInvestigation)
	c6.LastSeenLocation = "Old  City"

	return []Case{c1, c2, c3, c4, c5, c6}
}
