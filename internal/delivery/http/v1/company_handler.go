package v1

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
	store     domain.BlobStore
}

func NewCompanyHandler(companyOnly *gin.RouterGroup, companyUC domain.CompanyUsecase, store domain.BlobStore) {
	handler := &CompanyHandler{companyUC: companyUC, store: store}

	me := companyOnly.Group("/profiles/company/me")
	{
		me.GET("", handler.GetMyProfile)
		me.PUT("", handler.UpdateMyProfile)
		me.POST("/logo", handler.UploadLogo)
		me.PUT("/emails", handler.ReplaceEmails)
		me.PUT("/phones", handler.ReplacePhones)
	}
}

// GetMyProfile godoc
// @Summary      Get the authenticated company's profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/company/me [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetMyProfile(c *gin.Context) {
	profileID := c.GetInt64(string(domain.KeyProfileID))
	profile, err := h.companyUC.GetMyProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", profile)
}

type updateCompanyRequest struct {
	CompanyName        string  `json:"company_name" binding:"required"`
	Description        *string `json:"description"`
	RegistrationNumber *string `json:"registration_number"`
	Website            *string `json:"website"`
	Industry           *string `json:"industry"`
	RecruiterName      *string `json:"recruiter_name"`
	RecruiterPosition  *string `json:"recruiter_position"`
	AdditionalContact  *string `json:"additional_contact"`
}

// UpdateMyProfile godoc
// @Summary      Update the authenticated company's profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      updateCompanyRequest  true  "Company profile"
// @Success      200   {object}  response.Response{data=domain.CompanyProfile}
// @Failure      400   {object}  response.Response
// @Router       /profiles/company/me [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpdateMyProfile(c *gin.Context) {
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	profile, err := h.companyUC.UpdateMyProfile(c.Request.Context(), profileID, &domain.CompanyProfile{
		CompanyName:        req.CompanyName,
		Description:        req.Description,
		RegistrationNumber: req.RegistrationNumber,
		Website:            req.Website,
		Industry:           req.Industry,
		RecruiterName:      req.RecruiterName,
		RecruiterPosition:  req.RecruiterPosition,
		AdditionalContact:  req.AdditionalContact,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile updated", profile)
}

// UploadLogo godoc
// @Summary      Upload a company logo
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /profiles/company/me/logo [post]
// @Security     BearerAuth
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	upload, err := readUpload(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	url, err := h.store.Put(c.Request.Context(), bucketLogos, upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		c.Error(err)
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	if err := h.companyUC.SetLogo(c.Request.Context(), profileID, url); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo updated", gin.H{"url": url})
}

type replaceEmailsRequest struct {
	Emails []string `json:"emails"`
}

// ReplaceEmails godoc
// @Summary      Replace the company's contact email list
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      replaceEmailsRequest  true  "Full email list"
// @Success      200   {object}  response.Response{data=[]domain.CompanyEmail}
// @Failure      400   {object}  response.Response
// @Router       /profiles/company/me/emails [put]
// @Security     BearerAuth
func (h *CompanyHandler) ReplaceEmails(c *gin.Context) {
	var req replaceEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	emails, err := h.companyUC.ReplaceEmails(c.Request.Context(), profileID, req.Emails)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Emails updated", emails)
}

type replacePhonesRequest struct {
	Phones []string `json:"phones"`
}

// ReplacePhones godoc
// @Summary      Replace the company's contact phone list
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      replacePhonesRequest  true  "Full phone list"
// @Success      200   {object}  response.Response{data=[]domain.CompanyPhone}
// @Failure      400   {object}  response.Response
// @Router       /profiles/company/me/phones [put]
// @Security     BearerAuth
func (h *CompanyHandler) ReplacePhones(c *gin.Context) {
	var req replacePhonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	phones, err := h.companyUC.ReplacePhones(c.Request.Context(), profileID, req.Phones)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Phones updated", phones)
}
