package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewStudentHandler registers the company-facing candidate directory.
func NewStudentHandler(companyOnly *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &StudentHandler{candidateUC: candidateUC}
	companyOnly.GET("/students", handler.Search)
}

// Search godoc
// @Summary      Search candidates
// @Description  Filters combine conjunctively. The position filter is a case-insensitive substring match. The skills filter keeps only candidates whose entire skill set is contained in the given list.
// @Tags         students
// @Produce      json
// @Param        position  query     string  false  "Desired position substring"
// @Param        skills    query     string  false  "Comma-separated skill names"
// @Param        page      query     int     false  "Page number, 1-based"
// @Param        limit     query     int     false  "Page size, capped at 50"
// @Success      200  {object}  response.Response{data=domain.CandidatePage}
// @Router       /students [get]
// @Security     BearerAuth
func (h *StudentHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.SearchFilter{
		Position: strings.TrimSpace(c.Query("position")),
		Skills:   splitSkills(c.Query("skills")),
	}

	result, err := h.candidateUC.Search(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates", result)
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
