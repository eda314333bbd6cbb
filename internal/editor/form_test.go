package editor_test

import (
	"testing"
	"time"

	"jobboard-admin/internal/domain"
	"jobboard-admin/internal/editor"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryOptions(t *testing.T) {
	t.Run("Should list categories sorted with Other trailing", func(t *testing.T) {
		cats := editor.Categories()
		assert.Equal(t, []string{
			"Design", "Education", "Finance", "Healthcare", "Marketing",
			"Operations", "Sales", "Technology", "Other",
		}, cats)
	})

	t.Run("Should list subcategories sorted with Other trailing", func(t *testing.T) {
		subs := editor.SubcategoriesFor("Finance")
		assert.Equal(t, "Accounting", subs[0])
		assert.Equal(t, editor.OtherSentinel, subs[len(subs)-1])
		assert.Len(t, subs, 9)
	})

	t.Run("Should offer only the sentinel for unknown categories", func(t *testing.T) {
		assert.Equal(t, []string{editor.OtherSentinel}, editor.SubcategoriesFor("Robotics"))
		assert.Equal(t, []string{editor.OtherSentinel}, editor.SubcategoriesFor(""))
		assert.Equal(t, []string{editor.OtherSentinel}, editor.SubcategoriesFor(editor.OtherSentinel))
	})
}

func TestResolveSelection(t *testing.T) {
	t.Run("Should pass through taxonomy values", func(t *testing.T) {
		got, err := editor.ResolveSelection("Technology", "")
		assert.NoError(t, err)
		assert.Equal(t, "Technology", got)
	})

	t.Run("Should substitute custom text for the sentinel", func(t *testing.T) {
		got, err := editor.ResolveSelection("Other", "  Robotics ")
		assert.NoError(t, err)
		assert.Equal(t, "Robotics", got)
	})

	t.Run("Should reject the sentinel without custom text", func(t *testing.T) {
		_, err := editor.ResolveSelection("Other", "   ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Other")
	})

	t.Run("Should ignore stale custom text when a taxonomy value is selected", func(t *testing.T) {
		got, err := editor.ResolveSelection("Finance", "leftover text")
		assert.NoError(t, err)
		assert.Equal(t, "Finance", got)
	})
}

func TestCategorySelectionTransitions(t *testing.T) {
	var cs editor.CategorySelection

	cs.SelectCategory("Technology")
	assert.Equal(t, "Technology", cs.Category)
	assert.Equal(t, "", cs.SubCategory)
	assert.Contains(t, cs.SubCategoryOptions, "Backend Development")

	cs.SelectSubCategory("Other")
	cs.CustomSubCategory = "Platform Reliability"

	// Switching category resets the subcategory selection entirely.
	cs.SelectCategory("Finance")
	assert.Equal(t, "", cs.SubCategory)
	assert.Equal(t, "", cs.CustomSubCategory)
	assert.Contains(t, cs.SubCategoryOptions, "Accounting")
}

func TestOpenForCreate(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, loc)

	build := func() *editor.Form { return editor.OpenForCreate(now, loc) }

	t.Run("Should start blank with active status and today's date", func(t *testing.T) {
		f := build()
		assert.Equal(t, editor.TitleAdd, f.ModalTitle)
		assert.Equal(t, "", f.ID)
		assert.Equal(t, domain.StatusActive, f.Status)
		assert.Equal(t, "2024-03-15", f.PostedDate)
		assert.Empty(t, f.TechStacks)
		assert.Empty(t, f.CustomFields)
		assert.Nil(t, f.StagedLogo())
	})

	t.Run("Should produce identical state on every open", func(t *testing.T) {
		// Opening the add modal is a reset, not an accumulation: dirty
		// state from an earlier session must not leak through.
		first := build()
		first.Title = "dirty"
		first.Selection.SelectCategory("Technology")
		first.StageLogo(&domain.LogoUpload{Filename: "x.png"})

		second := build()
		assert.Equal(t, build(), second)
		assert.Equal(t, "", second.Title)
		assert.Nil(t, second.StagedLogo())
	})
}

func TestOpenForEdit(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, loc)
	posted := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)

	rec := &domain.JobRecord{
		ID:                         "abc123",
		Title:                      "Senior Backend Engineer",
		CompanyName:                "Acme",
		CompanyLogoURL:             strPtr("https://cdn.example.com/logo.png"),
		Category:                   "Technology",
		SubCategory:                "Backend Development",
		TechStacks:                 []string{"Go", "Go", "Redis"},
		PreviousInterviewQuestions: []string{"Why Go?", "Explain channels"},
		PostedDate:                 &posted,
		Status:                     domain.StatusActive,
		CustomFields:               map[string]string{"visa": "sponsored"},
	}

	f := editor.OpenForEdit(rec, now, loc)

	assert.Equal(t, editor.TitleEdit, f.ModalTitle)
	assert.Equal(t, "abc123", f.ID)
	assert.Equal(t, "2024-02-01", f.PostedDate)
	assert.Equal(t, "", f.ExpiryDate)
	assert.True(t, f.LogoPreview)
	assert.Equal(t, "https://cdn.example.com/logo.png", f.LogoURL)

	// Stored duplicates collapse when rebuilt into chip state.
	assert.Equal(t, []string{"Go", "Redis"}, f.TechStacks)

	// Questions render back as comma-joined text.
	assert.Equal(t, "Why Go?, Explain channels", f.InterviewQuestionsText)

	// Taxonomy values select directly.
	assert.Equal(t, "Technology", f.Selection.Category)
	assert.Equal(t, "Backend Development", f.Selection.SubCategory)

	// Custom fields become rows with stable ids.
	assert.Len(t, f.CustomFields, 1)
	assert.Equal(t, "visa", f.CustomFields[0].Key)
	assert.NotEmpty(t, f.CustomFields[0].ID)
}

func TestOpenForEditOutOfTaxonomy(t *testing.T) {
	loc := time.UTC
	now := time.Now()

	rec := &domain.JobRecord{
		ID:          "xyz",
		Category:    "Robotics",
		SubCategory: "Actuators",
	}

	f := editor.OpenForEdit(rec, now, loc)

	// Values outside the fixed taxonomy fall back to the sentinel with the
	// free text prefilled, so nothing is silently lost.
	assert.Equal(t, editor.OtherSentinel, f.Selection.Category)
	assert.Equal(t, "Robotics", f.Selection.CustomCategory)
	assert.Equal(t, editor.OtherSentinel, f.Selection.SubCategory)
	assert.Equal(t, "Actuators", f.Selection.CustomSubCategory)

	// Missing status renders as inactive rather than an empty badge.
	assert.Equal(t, domain.StatusInactive, f.Status)
}
