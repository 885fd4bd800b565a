package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	skillUC     domain.SkillUsecase
	store       domain.BlobStore
}

// NewCandidateHandler registers the candidate self-service surface. Every
// route operates on the authenticated candidate's own profile.
func NewCandidateHandler(candidateOnly *gin.RouterGroup, candidateUC domain.CandidateUsecase, skillUC domain.SkillUsecase, store domain.BlobStore) {
	handler := &CandidateHandler{candidateUC: candidateUC, skillUC: skillUC, store: store}

	me := candidateOnly.Group("/profiles/candidate/me")
	{
		me.GET("", handler.GetMyProfile)
		me.PATCH("", handler.UpdateMyProfile)
		me.POST("/avatar", handler.UploadAvatar)
		me.PUT("/skills", handler.ReplaceSkills)

		me.POST("/work-histories", handler.AddWorkHistory)
		me.PUT("/work-histories/:id", handler.UpdateWorkHistory)
		me.DELETE("/work-histories/:id", handler.DeleteWorkHistory)

		me.POST("/certificates", handler.UploadCertificate)
		me.DELETE("/certificates/:id", handler.DeleteCertificate)
		me.POST("/contact-files", handler.UploadContactFile)
		me.DELETE("/contact-files/:id", handler.DeleteContactFile)
	}

	candidateOnly.GET("/skills/suggest", handler.SuggestSkills)
}

// GetMyProfile godoc
// @Summary      Get the authenticated candidate's full profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateDetails}
// @Failure      404  {object}  response.Response
// @Router       /profiles/candidate/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMyProfile(c *gin.Context) {
	profileID := c.GetInt64(string(domain.KeyProfileID))
	details, err := h.candidateUC.GetMyProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", details)
}

// UpdateMyProfile godoc
// @Summary      Partially update the authenticated candidate's profile
// @Description  Only the keys present in the body are written; explicit nulls clear a field.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Sparse field patch"
// @Success      200   {object}  response.Response{data=domain.CandidateDetails}
// @Failure      400   {object}  response.Response
// @Router       /profiles/candidate/me [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateMyProfile(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	details, err := h.candidateUC.UpdateMyProfile(c.Request.Context(), profileID, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", details)
}

// UploadAvatar godoc
// @Summary      Upload a profile photo
// @Description  Images are downscaled and re-encoded before storage.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /profiles/candidate/me/avatar [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadAvatar(c *gin.Context) {
	upload, err := readUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.store.Put(c.Request.Context(), bucketAvatars, upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		c.Error(err)
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.candidateUC.SetAvatar(c.Request.Context(), profileID, url); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar updated", gin.H{"url": url})
}

type replaceSkillsRequest struct {
	Skills []domain.SkillInput `json:"skills"`
}

// ReplaceSkills godoc
// @Summary      Replace the candidate's entire skill set
// @Description  The submitted list becomes the candidate's skills; omitted skills are removed. Ratings outside 1-10 are clamped.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      replaceSkillsRequest  true  "Full skill list"
// @Success      200   {object}  response.Response{data=domain.CandidateDetails}
// @Failure      400   {object}  response.Response
// @Router       /profiles/candidate/me/skills [put]
// @Security     BearerAuth
func (h *CandidateHandler) ReplaceSkills(c *gin.Context) {
	var req replaceSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	details, err := h.skillUC.ReplaceSkillSet(c.Request.Context(), profileID, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills updated", details)
}

// SuggestSkills godoc
// @Summary      Suggest catalog skills for a text fragment
// @Description  Degrades to an empty list when no suggester is available.
// @Tags         candidates
// @Produce      json
// @Param        text  query     string  true  "Text to match"
// @Success      200  {object}  response.Response{data=[]domain.SkillSuggestion}
// @Router       /skills/suggest [get]
// @Security     BearerAuth
func (h *CandidateHandler) SuggestSkills(c *gin.Context) {
	suggestions, err := h.skillUC.Suggest(c.Request.Context(), c.Query("text"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill suggestions", suggestions)
}

type workHistoryRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

func (r *workHistoryRequest) toDomain() *domain.WorkHistory {
	return &domain.WorkHistory{
		CompanyName: r.CompanyName,
		Position:    r.Position,
		StartDate:   parseDatePtr(r.StartDate),
		EndDate:     parseDatePtr(r.EndDate),
		Description: r.Description,
	}
}

// parseDatePtr accepts YYYY-MM-DD or RFC 3339; anything else reads as unset.
func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t
	}
	return nil
}

// AddWorkHistory godoc
// @Summary      Add a work history entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      workHistoryRequest  true  "Work history"
// @Success      201   {object}  response.Response{data=domain.WorkHistory}
// @Failure      400   {object}  response.Response
// @Router       /profiles/candidate/me/work-histories [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddWorkHistory(c *gin.Context) {
	var req workHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	wh := req.toDomain()
	if err := h.candidateUC.AddWorkHistory(c.Request.Context(), profileID, wh); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Work history added", wh)
}

// UpdateWorkHistory godoc
// @Summary      Update a work history entry the candidate owns
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Work history ID"
// @Param        body  body      workHistoryRequest  true  "Work history"
// @Success      200   {object}  response.Response{data=domain.WorkHistory}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /profiles/candidate/me/work-histories/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateWorkHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req workHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	wh := req.toDomain()
	wh.ID = id
	if err := h.candidateUC.UpdateWorkHistory(c.Request.Context(), profileID, wh); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work history updated", wh)
}

// DeleteWorkHistory godoc
// @Summary      Delete a work history entry the candidate owns
// @Tags         candidates
// @Produce      json
// @Param        id  path      int  true  "Work history ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/candidate/me/work-histories/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteWorkHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.candidateUC.DeleteWorkHistory(c.Request.Context(), profileID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work history deleted", nil)
}

// UploadCertificate godoc
// @Summary      Upload a certificate file
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Certificate file"
// @Param        name         formData  string  false  "Display name, defaults to the filename"
// @Param        description  formData  string  false  "Description"
// @Success      201  {object}  response.Response{data=domain.CertificateFile}
// @Failure      400  {object}  response.Response
// @Router       /profiles/candidate/me/certificates [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadCertificate(c *gin.Context) {
	upload, err := readUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.store.Put(c.Request.Context(), bucketDocuments, upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		c.Error(err)
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = upload.Original
	}
	file := &domain.CertificateFile{
		Name:     name,
		URL:      url,
		MimeType: upload.ContentType,
	}
	if desc := c.PostForm("description"); desc != "" {
		file.Description = &desc
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.candidateUC.AddCertificateFile(c.Request.Context(), profileID, file); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certificate uploaded", file)
}

// DeleteCertificate godoc
// @Summary      Delete a certificate file the candidate owns
// @Tags         candidates
// @Produce      json
// @Param        id  path      int  true  "Certificate file ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/candidate/me/certificates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteCertificate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.candidateUC.DeleteCertificateFile(c.Request.Context(), profileID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certificate deleted", nil)
}

// UploadContactFile godoc
// @Summary      Upload a contact document such as a CV
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Document"
// @Param        name  formData  string  false  "Display name, defaults to the filename"
// @Success      201  {object}  response.Response{data=domain.ContactFile}
// @Failure      400  {object}  response.Response
// @Router       /profiles/candidate/me/contact-files [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadContactFile(c *gin.Context) {
	upload, err := readUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.store.Put(c.Request.Context(), bucketDocuments, upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		c.Error(err)
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = upload.Original
	}
	file := &domain.ContactFile{
		Name:     name,
		URL:      url,
		MimeType: upload.ContentType,
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.candidateUC.AddContactFile(c.Request.Context(), profileID, file); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "File uploaded", file)
}

// DeleteContactFile godoc
// @Summary      Delete a contact document the candidate owns
// @Tags         candidates
// @Produce      json
// @Param        id  path      int  true  "Contact file ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/candidate/me/contact-files/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteContactFile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.candidateUC.DeleteContactFile(c.Request.Context(), profileID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File deleted", nil)
}

func pathID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid ID in path")
	}
	return id, nil
}
