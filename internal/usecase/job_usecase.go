package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobboard-admin/internal/domain"
	"jobboard-admin/internal/editor"
	"jobboard-admin/pkg/apperror"
	"jobboard-admin/pkg/blobstore"
	"jobboard-admin/pkg/logger"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	blobs        blobstore.Store
	session      domain.SessionUsecase
	loc          *time.Location
	listingLimit int
}

func NewJobUsecase(jobRepo domain.JobRepository, blobs blobstore.Store, session domain.SessionUsecase, loc *time.Location, listingLimit int) domain.JobUsecase {
	if loc == nil {
		loc = time.Local
	}
	if listingLimit < 1 {
		listingLimit = 50
	}
	return &jobUsecase{
		jobRepo:      jobRepo,
		blobs:        blobs,
		session:      session,
		loc:          loc,
		listingLimit: listingLimit,
	}
}

// Submit runs the full save pipeline for create and update: privilege
// re-check, category resolution, logo upload, normalization, then the write.
// The privilege check is repeated here even though the session guard already
// ran, so a claim revoked mid-session cannot slip a write through.
func (u *jobUsecase) Submit(ctx context.Context, sub *domain.JobSubmission) (*domain.JobRecord, error) {
	uid, _ := ctx.Value(domain.KeyAdminUID).(string)
	idToken, _ := ctx.Value(domain.KeyIDToken).(string)
	if uid == "" || idToken == "" {
		return nil, apperror.Unauthorized("Admin not logged in. Please refresh and log in.")
	}

	ident, err := u.session.VerifyAdmin(ctx, idToken)
	if err != nil {
		logger.Log.Warn("Job submit blocked by privilege re-check", "uid", uid, "error", err)
		return nil, err
	}

	category, err := editor.ResolveSelection(sub.Category, sub.CustomCategory)
	if err != nil {
		return nil, err
	}
	subCategory, err := editor.ResolveSelection(sub.SubCategory, sub.CustomSubCategory)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(sub.Title)
	if title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	companyName := strings.TrimSpace(sub.CompanyName)
	if companyName == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	logoURL := strings.TrimSpace(sub.LogoURL)
	if sub.Logo != nil && len(sub.Logo.Data) > 0 {
		uploaded, err := u.uploadLogo(ctx, sub.Logo)
		if err != nil {
			// The record is not written with a half-finished logo.
			return nil, err
		}
		logoURL = uploaded
	}

	chips := editor.NewChipSet(sub.TechStacks...)
	if chips.Len() == 0 && sub.RawTechStacks != "" {
		chips = editor.NewChipSet(editor.DecodeTechStacks(sub.RawTechStacks)...)
	}

	status := sub.Status
	if status == "" {
		status = domain.StatusActive
	}
	if _, valid := map[domain.JobStatus]bool{
		domain.StatusActive:   true,
		domain.StatusInactive: true,
		domain.StatusExpired:  true,
	}[status]; !valid {
		return nil, apperror.BadRequest(fmt.Sprintf("Unknown status %q", status))
	}

	rec := &domain.JobRecord{
		Title:                      title,
		CompanyName:                companyName,
		Location:                   strings.TrimSpace(sub.Location),
		Category:                   category,
		SubCategory:                subCategory,
		Description:                strings.TrimSpace(sub.Description),
		Requirements:               strings.TrimSpace(sub.Requirements),
		ExperienceLevel:            strings.TrimSpace(sub.ExperienceLevel),
		TechStacks:                 chips.Values(),
		PreviousInterviewQuestions: editor.SplitInterviewQuestions(sub.InterviewQuestionsText),
		SourceLink:                 strings.TrimSpace(sub.SourceLink),
		SalaryRange:                strings.TrimSpace(sub.SalaryRange),
		PostedDate:                 editor.ParseDay(sub.PostedDate, u.loc),
		ExpiryDate:                 editor.ParseDay(sub.ExpiryDate, u.loc),
		Relocation:                 sub.Relocation,
		Status:                     status,
		CustomFields:               editor.CollectFields(sub.CustomFields),
		UploadedBy:                 ident.UID,
	}
	if logoURL != "" {
		rec.CompanyLogoURL = &logoURL
	}

	if sub.ID == "" {
		id, err := u.jobRepo.Create(ctx, rec)
		if err != nil {
			return nil, err
		}
		rec.ID = id
		logger.Log.Info("Job posting created", "job_id", id, "uid", ident.UID)
	} else {
		rec.ID = sub.ID
		if err := u.jobRepo.Update(ctx, rec); err != nil {
			return nil, err
		}
		logger.Log.Info("Job posting updated", "job_id", rec.ID, "uid", ident.UID)
	}
	return rec, nil
}

func (u *jobUsecase) uploadLogo(ctx context.Context, logo *domain.LogoUpload) (string, error) {
	contentType, err := blobstore.ValidateLogo(logo.Filename, logo.Data)
	if err != nil {
		return "", apperror.BadRequest("Logo rejected: " + err.Error())
	}

	key := blobstore.LogoKey(time.Now(), logo.Filename)
	url, err := u.blobs.Upload(ctx, key, logo.Data, contentType)
	if err != nil {
		return "", apperror.New(http.StatusBadGateway, "Error uploading logo. The posting was not saved.", err)
	}
	return url, nil
}

func (u *jobUsecase) ListRecent(ctx context.Context) ([]domain.JobRecord, error) {
	return u.jobRepo.FetchRecent(ctx, u.listingLimit)
}

func (u *jobUsecase) GetByID(ctx context.Context, id string) (*domain.JobRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.BadRequest("Job id is required")
	}
	return u.jobRepo.GetByID(ctx, id)
}

// ToggleStatus flips active to inactive and back. The caller must confirm
// with the action word that matches the direction ("activate" or
// "deactivate"), mirroring the confirm dialog in the dashboard. Expired
// records cannot be toggled.
func (u *jobUsecase) ToggleStatus(ctx context.Context, id string, confirmAction string) (domain.JobStatus, error) {
	rec, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	target, ok := rec.Status.ToggleTarget()
	if !ok {
		return "", apperror.BadRequest("Only active or inactive postings can be toggled")
	}

	actionWord := "deactivate"
	if target == domain.StatusActive {
		actionWord = "activate"
	}
	if confirmAction != actionWord {
		return "", apperror.BadRequest(fmt.Sprintf("Confirmation required: send action=%q to %s this posting", actionWord, actionWord))
	}

	if err := u.jobRepo.UpdateStatus(ctx, id, target); err != nil {
		return "", err
	}
	logger.Log.Info("Job posting status toggled", "job_id", id, "status", target)
	return target, nil
}

// Delete removes a posting permanently. The caller echoes the id back as the
// confirmation, the API equivalent of the "are you sure" prompt.
func (u *jobUsecase) Delete(ctx context.Context, id string, confirmID string) error {
	if strings.TrimSpace(id) == "" {
		return apperror.BadRequest("Job id is required")
	}
	if confirmID != id {
		return apperror.BadRequest("Confirmation required: echo the posting id to delete it")
	}

	if _, err := u.jobRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("Job posting deleted", "job_id", id)
	return nil
}
