package editor

import (
	"strings"
	"time"

	"jobboard-admin/internal/domain"
	"jobboard-admin/pkg/apperror"
)

// Editor titles shown on the modal header.
const (
	TitleAdd  = "Add New Job Posting"
	TitleEdit = "Edit Job Posting"
)

// CategorySelection is the dependent category/subcategory selector state.
// Category and SubCategory hold a taxonomy value or the Other sentinel; the
// custom fields carry the free text that becomes the effective value while
// the sentinel is selected.
type CategorySelection struct {
	Category           string   `json:"category"`
	CustomCategory     string   `json:"customCategory"`
	SubCategory        string   `json:"subCategory"`
	CustomSubCategory  string   `json:"customSubCategory"`
	CategoryOptions    []string `json:"categoryOptions"`
	SubCategoryOptions []string `json:"subCategoryOptions"`
}

// SelectCategory repopulates the subcategory options for the chosen category
// and resets any prior subcategory selection. A non-Other choice clears the
// custom text.
func (cs *CategorySelection) SelectCategory(category string) {
	cs.Category = category
	cs.SubCategory = ""
	cs.CustomSubCategory = ""
	cs.SubCategoryOptions = SubcategoriesFor(category)
	if category != OtherSentinel {
		cs.CustomCategory = ""
	}
}

// SelectSubCategory records a subcategory choice; non-Other choices clear
// the custom text.
func (cs *CategorySelection) SelectSubCategory(sub string) {
	cs.SubCategory = sub
	if sub != OtherSentinel {
		cs.CustomSubCategory = ""
	}
}

// populateFromStored initializes the selector from stored values when
// opening for edit. A stored value outside the fixed taxonomy falls back to
// the Other sentinel with the free text prefilled.
func (cs *CategorySelection) populateFromStored(category, subCategory string) {
	cs.CategoryOptions = Categories()
	switch {
	case category == "":
		cs.Category = ""
		cs.SubCategoryOptions = SubcategoriesFor("")
	case IsKnownCategory(category):
		cs.Category = category
		cs.SubCategoryOptions = SubcategoriesFor(category)
	default:
		cs.Category = OtherSentinel
		cs.CustomCategory = category
		cs.SubCategoryOptions = SubcategoriesFor(OtherSentinel)
	}
	switch {
	case subCategory == "":
		cs.SubCategory = ""
	case IsKnownSubcategory(cs.Category, subCategory):
		cs.SubCategory = subCategory
	default:
		cs.SubCategory = OtherSentinel
		cs.CustomSubCategory = subCategory
	}
}

// ResolveSelection maps a selector value plus its custom text to the
// effective persisted value. The free text is required while the sentinel is
// active, and the sentinel itself is never a legal result.
func ResolveSelection(selected, custom string) (string, error) {
	if selected != OtherSentinel {
		return selected, nil
	}
	custom = strings.TrimSpace(custom)
	if custom == "" {
		return "", apperror.BadRequest("Please specify a value when \"Other\" is selected")
	}
	return custom, nil
}

// Form is the record editor's full view-model: typed state for every field,
// the chip collection, the custom-field rows and the staged logo. It renders
// to structured output so the workflow is testable without a DOM.
type Form struct {
	ModalTitle             string            `json:"modalTitle"`
	ID                     string            `json:"id"`
	Title                  string            `json:"title"`
	CompanyName            string            `json:"companyName"`
	LogoURL                string            `json:"companyLogoUrl"`
	LogoPreview            bool              `json:"logoPreview"`
	Location               string            `json:"location"`
	Selection              CategorySelection `json:"selection"`
	Description            string            `json:"description"`
	Requirements           string            `json:"requirements"`
	ExperienceLevel        string            `json:"experienceLevel"`
	TechStacks             []string          `json:"techStacks"`
	InterviewQuestionsText string            `json:"previousInterviewQuestions"`
	SourceLink             string            `json:"sourceLink"`
	SalaryRange            string            `json:"salaryRange"`
	PostedDate             string            `json:"postedDate"`
	ExpiryDate             string            `json:"expiryDate"`
	Relocation             bool              `json:"relocation"`
	Status                 domain.JobStatus  `json:"status"`
	CustomFields           []FieldRow        `json:"customFields"`

	staged *domain.LogoUpload
}

// OpenForCreate returns the blank "add" state: all fields default, status
// active, posted date today, no staged logo, no custom-field rows.
func OpenForCreate(now time.Time, loc *time.Location) *Form {
	f := &Form{
		ModalTitle: TitleAdd,
		Status:     domain.StatusActive,
		PostedDate: now.In(loc).Format(DayLayout),
		TechStacks: []string{},
	}
	f.Selection.CategoryOptions = Categories()
	f.Selection.SubCategoryOptions = SubcategoriesFor("")
	return f
}

// OpenForEdit populates every field from the stored record. Timestamps are
// converted to day strings, arrays are reconstructed into chip state or
// comma-joined text, and custom fields become one row per entry with stable
// ids. Any previously staged logo file is dropped.
func OpenForEdit(rec *domain.JobRecord, now time.Time, loc *time.Location) *Form {
	f := &Form{
		ModalTitle:             TitleEdit,
		ID:                     rec.ID,
		Title:                  rec.Title,
		CompanyName:            rec.CompanyName,
		Location:               rec.Location,
		Description:            rec.Description,
		Requirements:           rec.Requirements,
		ExperienceLevel:        rec.ExperienceLevel,
		TechStacks:             NewChipSet(rec.TechStacks...).Values(),
		InterviewQuestionsText: strings.Join(rec.PreviousInterviewQuestions, ", "),
		SourceLink:             rec.SourceLink,
		SalaryRange:            rec.SalaryRange,
		PostedDate:             FormatDay(rec.PostedDate, loc),
		ExpiryDate:             FormatDay(rec.ExpiryDate, loc),
		Relocation:             rec.Relocation,
		Status:                 rec.Status,
	}
	if f.Status == "" {
		f.Status = domain.StatusInactive
	}
	if rec.CompanyLogoURL != nil && *rec.CompanyLogoURL != "" {
		f.LogoURL = *rec.CompanyLogoURL
		f.LogoPreview = true
	}
	f.Selection.populateFromStored(rec.Category, rec.SubCategory)
	rows := NewFieldRows()
	rows.Populate(rec.CustomFields, now)
	f.CustomFields = rows.Rows()
	return f
}

// StageLogo stages a local file in memory. Staging never clears a
// previously saved URL; only a successful save with the new upload does.
func (f *Form) StageLogo(u *domain.LogoUpload) {
	f.staged = u
}

// ClearStagedLogo drops the staged file, leaving any saved URL untouched.
func (f *Form) ClearStagedLogo() {
	f.staged = nil
}

func (f *Form) StagedLogo() *domain.LogoUpload {
	return f.staged
}
