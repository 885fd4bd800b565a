package v1

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUC domain.InteractionUsecase
}

// NewInteractionHandler registers the interest workflow. Expressing interest
// is company-side; candidates only see who reached out.
func NewInteractionHandler(candidateOnly, companyOnly *gin.RouterGroup, interactionUC domain.InteractionUsecase) {
	handler := &InteractionHandler{interactionUC: interactionUC}

	companyOnly.POST("/interactions/interest/:studentId", handler.ExpressInterest)
	companyOnly.GET("/interactions/interested", handler.ListInterestedCandidates)
	candidateOnly.GET("/interactions/my-interests", handler.ListMyInterests)
}

// ExpressInterest godoc
// @Summary      Express interest in a candidate
// @Description  Records the interest once per pair and triggers a best-effort contact-disclosure notice to the candidate.
// @Tags         interactions
// @Produce      json
// @Param        studentId  path      int  true  "Candidate profile ID"
// @Success      201  {object}  response.Response{data=domain.Interaction}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interactions/interest/{studentId} [post]
// @Security     BearerAuth
func (h *InteractionHandler) ExpressInterest(c *gin.Context) {
	studentID, err := pathID(c, "studentId")
	if err != nil {
		c.Error(err)
		return
	}

	companyProfileID := c.GetInt64(string(domain.KeyProfileID))
	interaction, err := h.interactionUC.ExpressInterest(c.Request.Context(), companyProfileID, studentID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interest recorded", interaction)
}

// ListMyInterests godoc
// @Summary      List companies that expressed interest in the candidate
// @Tags         interactions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CandidateInterest}
// @Router       /interactions/my-interests [get]
// @Security     BearerAuth
func (h *InteractionHandler) ListMyInterests(c *gin.Context) {
	profileID := c.GetInt64(string(domain.KeyProfileID))
	interests, err := h.interactionUC.ListMyInterests(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interested companies", interests)
}

// ListInterestedCandidates godoc
// @Summary      List candidates the company has expressed interest in
// @Tags         interactions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CompanyInterest}
// @Router       /interactions/interested [get]
// @Security     BearerAuth
func (h *InteractionHandler) ListInterestedCandidates(c *gin.Context) {
	profileID := c.GetInt64(string(domain.KeyProfileID))
	interests, err := h.interactionUC.ListInterestedCandidates(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interested candidates", interests)
}
