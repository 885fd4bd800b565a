package v1

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(candidateOnly *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := candidateOnly.Group("/applications")
	{
		apps.POST("", handler.Submit)
		apps.GET("/me", handler.GetMine)
	}
}

// Submit godoc
// @Summary      Submit or update the candidate's internship application
// @Description  One application per candidate/company pair; resubmitting overwrites the previous one. When no company is given, the sole registered company is the target.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SubmitApplicationInput  true  "Application"
// @Success      201   {object}  response.Response{data=domain.InternshipApplication}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var input domain.SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profileID := c.GetInt64(string(domain.KeyProfileID))
	app, err := h.applicationUC.Submit(c.Request.Context(), profileID, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// GetMine godoc
// @Summary      Get the candidate's current application
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.InternshipApplication}
// @Failure      404  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMine(c *gin.Context) {
	profileID := c.GetInt64(string(domain.KeyProfileID))
	app, err := h.applicationUC.GetMine(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current application", app)
}
