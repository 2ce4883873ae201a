package domain

import "fmt"

type statusText struct {
	en string
	ar string
}

var statusLabels = map[CaseStatus]statusText{
	CaseStatusKidnapped:     {en: "Kidnapped", ar: "مختطف"},
	CaseStatusRansom:        {en: "Kidnapped for Ransom", ar: "مختطف للفدية"},
	CaseStatusKilled:        {en: "Killed", ar: "قُتل"},
	CaseStatusReturned:      {en: "Returned Safely", ar: "عاد بسلام"},
	CaseStatusMissing:       {en: "Missing (Voluntary)", ar: "مفقود (طوعي)"},
	CaseStatusInvestigation: {en: "Under Investigation", ar: "قيد التحقيق"},
}

// StatusLabel returns the display label of status in lang.
// Statuses outside the closed set return ErrInvalidStatus.
func StatusLabel(status CaseStatus, lang Language) (string, error) {
	t, ok := statusLabels[status]
	if !ok {
		return "", fmt.Errorf("status label: %w: %q", ErrInvalidStatus, status)
	}
	switch lang {
	case LanguageEnglish:
		return t.en, nil
	case LanguageArabic:
		return t.ar, nil
	}
	return "", fmt.Errorf("status label: %w: %q", ErrInvalidLanguage, lang)
}

// StatusClass returns the styling token for status, e.g. "status-killed".
func StatusClass(status CaseStatus) (string, error) {
	if !status.IsValid() {
		return "", fmt.Errorf("status class: %w: %q", ErrInvalidStatus, status)
	}
	return "status-" + string(status), nil
}

// StatusInfo is one row of the status catalog.
type StatusInfo struct {
	Status CaseStatus
	Label  string
	Class  string
}

// StatusCatalog returns label and class for every status in display order.
func StatusCatalog(lang Language) ([]StatusInfo, error) {
	statuses := AllCaseStatuses()
	out := make([]StatusInfo, 0, len(statuses))
	for _, s := range statuses {
		label, err := StatusLabel(s, lang)
		if err != nil {
			return nil, err
		}
		class, err := StatusClass(s)
		if err != nil {
			return nil, err
		}
		out = append(out, StatusInfo{Status: s, Label: label, Class: class})
	}
	return out, nil
}
