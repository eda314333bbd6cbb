package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-admin/config"
	"jobboard-admin/internal/delivery/http/response"
	"jobboard-admin/internal/domain"
	"jobboard-admin/internal/editor"
	"jobboard-admin/internal/listing"
	"jobboard-admin/pkg/apperror"
)

type JobHandler struct {
	jobUC  domain.JobUsecase
	config *config.Config
	loc    *time.Location
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, cfg *config.Config, loc *time.Location) {
	handler := &JobHandler{
		jobUC:  jobUC,
		config: cfg,
		loc:    loc,
	}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/form/defaults", handler.FormDefaults)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.PATCH("/:id/status", handler.ToggleStatus)
		jobs.DELETE("/:id", handler.Delete)
	}
}

// jobPayload carries the editor form fields. JSON requests send arrays
// directly; multipart requests send techStacks and customFields as JSON
// strings alongside the logo file.
type jobPayload struct {
	Title                  string   `json:"title" form:"title"`
	CompanyName            string   `json:"companyName" form:"companyName"`
	CompanyLogoURL         string   `json:"companyLogoUrl" form:"companyLogoUrl"`
	Location               string   `json:"location" form:"location"`
	Category               string   `json:"category" form:"category"`
	CustomCategory         string   `json:"customCategory" form:"customCategory"`
	SubCategory            string   `json:"subCategory" form:"subCategory"`
	CustomSubCategory      string   `json:"customSubCategory" form:"customSubCategory"`
	Description            string   `json:"description" form:"description"`
	Requirements           string   `json:"requirements" form:"requirements"`
	ExperienceLevel        string   `json:"experienceLevel" form:"experienceLevel"`
	TechStacks             []string `json:"techStacks" form:"-"`
	RawTechStacks          string   `json:"-" form:"techStacks"`
	InterviewQuestionsText string   `json:"previousInterviewQuestions" form:"previousInterviewQuestions"`
	SourceLink             string   `json:"sourceLink" form:"sourceLink"`
	SalaryRange            string   `json:"salaryRange" form:"salaryRange"`
	PostedDate             string   `json:"postedDate" form:"postedDate" binding:"omitempty,day_date"`
	ExpiryDate             string   `json:"expiryDate" form:"expiryDate" binding:"omitempty,day_date"`
	Relocation             bool     `json:"relocation" form:"relocation"`
	Status                 string   `json:"status" form:"status" binding:"omitempty,oneof=active inactive expired"`

	CustomFields    []domain.CustomField `json:"customFields" form:"-"`
	RawCustomFields string               `json:"-" form:"customFields"`
}

// List godoc
// @Summary      List Job Postings
// @Description  Returns the most recent postings rendered as dashboard table rows.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	records, err := h.jobUC.ListRecent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job postings retrieved", gin.H{
		"rows":  listing.BuildRows(records, h.loc),
		"count": len(records),
	})
}

// FormDefaults godoc
// @Summary      Editor Defaults
// @Description  Returns the blank editor state used by the Add New Job Posting modal.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /jobs/form/defaults [get]
func (h *JobHandler) FormDefaults(c *gin.Context) {
	now := time.Now()
	form := editor.OpenForCreate(now, h.loc)
	response.Success(c, http.StatusOK, "Editor defaults", gin.H{
		"form":       form,
		"expiryHint": editor.ExpiryHint(form.ExpiryDate, now, h.loc),
	})
}

// Get godoc
// @Summary      Get Job Posting
// @Description  Returns one posting with its populated editor state.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Posting ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	rec, err := h.jobUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Job posting not found"))
			return
		}
		c.Error(err)
		return
	}

	now := time.Now()
	form := editor.OpenForEdit(rec, now, h.loc)
	response.Success(c, http.StatusOK, "Job posting retrieved", gin.H{
		"record":     rec,
		"form":       form,
		"expiryHint": editor.ExpiryHint(form.ExpiryDate, now, h.loc),
	})
}

// Create godoc
// @Summary      Create Job Posting
// @Description  Saves a new posting. Accepts JSON or multipart with a staged logo file; the admin claim is re-verified before the write.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      jobPayload  true  "Posting fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	sub, err := h.parseSubmission(c)
	if err != nil {
		c.Error(err)
		return
	}

	rec, err := h.jobUC.Submit(c.Request.Context(), sub)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posting created", rec)
}

// Update godoc
// @Summary      Update Job Posting
// @Description  Overwrites an existing posting with the submitted editor state.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string      true  "Posting ID"
// @Param        job  body      jobPayload  true  "Posting fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	sub, err := h.parseSubmission(c)
	if err != nil {
		c.Error(err)
		return
	}
	sub.ID = c.Param("id")

	rec, err := h.jobUC.Submit(c.Request.Context(), sub)
	if err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Job posting not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting updated", rec)
}

type toggleRequest struct {
	Action string `json:"action" binding:"required,confirm_word"`
}

// ToggleStatus godoc
// @Summary      Toggle Posting Status
// @Description  Flips a posting between active and inactive. The action word confirms the direction; expired postings cannot be toggled.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string         true  "Posting ID"
// @Param        action  body      toggleRequest  true  "Confirmation action"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) ToggleStatus(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("action must be \"activate\" or \"deactivate\""))
		return
	}

	status, err := h.jobUC.ToggleStatus(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Job posting not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("Job posting is now %s", status), gin.H{"status": status})
}

// Delete godoc
// @Summary      Delete Job Posting
// @Description  Permanently removes a posting. The id must be echoed in the confirm query parameter.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Posting ID"
// @Param        confirm  query     string  true  "Echo of the posting ID"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.jobUC.Delete(c.Request.Context(), id, c.Query("confirm")); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Job posting not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting deleted", nil)
}

func (h *JobHandler) parseSubmission(c *gin.Context) (*domain.JobSubmission, error) {
	var p jobPayload
	var logo *domain.LogoUpload

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBind(&p); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		if p.RawCustomFields != "" {
			if err := json.Unmarshal([]byte(p.RawCustomFields), &p.CustomFields); err != nil {
				return nil, apperror.BadRequest("customFields must be a JSON array of {key, value} objects")
			}
		}

		file, err := c.FormFile("logo")
		if err == nil && file != nil {
			logo, err = h.readLogo(file)
			if err != nil {
				return nil, err
			}
		}
	} else {
		if err := c.ShouldBindJSON(&p); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
	}

	return &domain.JobSubmission{
		Title:                  p.Title,
		CompanyName:            p.CompanyName,
		Location:               p.Location,
		Category:               p.Category,
		CustomCategory:         p.CustomCategory,
		SubCategory:            p.SubCategory,
		CustomSubCategory:      p.CustomSubCategory,
		Description:            p.Description,
		Requirements:           p.Requirements,
		ExperienceLevel:        p.ExperienceLevel,
		TechStacks:             p.TechStacks,
		RawTechStacks:          p.RawTechStacks,
		InterviewQuestionsText: p.InterviewQuestionsText,
		SourceLink:             p.SourceLink,
		SalaryRange:            p.SalaryRange,
		PostedDate:             p.PostedDate,
		ExpiryDate:             p.ExpiryDate,
		Relocation:             p.Relocation,
		Status:                 domain.JobStatus(p.Status),
		CustomFields:           p.CustomFields,
		LogoURL:                p.CompanyLogoURL,
		Logo:                   logo,
	}, nil
}

func (h *JobHandler) readLogo(file *multipart.FileHeader) (*domain.LogoUpload, error) {
	if file.Size > h.config.MaxLogoBytes {
		return nil, apperror.BadRequest(fmt.Sprintf("Logo exceeds the %d byte limit", h.config.MaxLogoBytes))
	}

	f, err := file.Open()
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded logo")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.config.MaxLogoBytes+1))
	if err != nil {
		return nil, apperror.BadRequest("Could not read uploaded logo")
	}
	if int64(len(data)) > h.config.MaxLogoBytes {
		return nil, apperror.BadRequest(fmt.Sprintf("Logo exceeds the %d byte limit", h.config.MaxLogoBytes))
	}

	return &domain.LogoUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
