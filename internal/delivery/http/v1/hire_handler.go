package v1

import (
	"fmt"
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type HireHandler struct {
	hireUC domain.HireUsecase
}

func NewHireHandler(r *gin.RouterGroup, hireUC domain.HireUsecase) {
	handler := &HireHandler{hireUC: hireUC}

	hires := r.Group("/hires")
	{
		hires.GET("", handler.List)
		hires.POST("", handler.Create)
		hires.PATCH("/:id/status", handler.UpdateStatus)
		hires.GET("/export", handler.Export)
	}
}

type CreateHireRequest struct {
	HirerID   string `json:"hirerId" binding:"required"`
	CreatorID string `json:"creatorId" binding:"required"`
	JobTitle  string `json:"jobTitle" binding:"required"`
	Budget    string `json:"budget"`
}

type UpdateHireStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=requested active completed"`
}

// List godoc
// @Summary      List hires for a user
// @Description  Engagements where the user is hirer or creator, newest first
// @Tags         hires
// @Produce      json
// @Param        user_id  query     string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /hires [get]
func (h *HireHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Error(apperror.BadRequest("user_id query parameter is required"))
		return
	}

	hires, err := h.hireUC.GetHires(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hires retrieved", hires)
}

// Create godoc
// @Summary      Send a hire request
// @Tags         hires
// @Accept       json
// @Produce      json
// @Param        hire  body      CreateHireRequest  true  "Hire JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /hires [post]
func (h *HireHandler) Create(c *gin.Context) {
	var req CreateHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	hire, err := h.hireUC.CreateHire(c.Request.Context(), req.HirerID, req.CreatorID, req.JobTitle, req.Budget)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Hire requested", hire)
}

// UpdateStatus godoc
// @Summary      Update a hire's status
// @Description  Overwrites the status and notifies the counterparty
// @Tags         hires
// @Accept       json
// @Produce      json
// @Param        id      path      string                   true  "Hire ID"
// @Param        status  body      UpdateHireStatusRequest  true  "Status JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /hires/{id}/status [patch]
func (h *HireHandler) UpdateStatus(c *gin.Context) {
	var req UpdateHireStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	hire, err := h.hireUC.UpdateHireStatus(c.Request.Context(), c.Param("id"), domain.HireStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hire status updated", hire)
}

// Export godoc
// @Summary      Export a user's hires as a spreadsheet
// @Tags         hires
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        user_id  query     string  true  "User ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Router       /hires/export [get]
func (h *HireHandler) Export(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Error(apperror.BadRequest("user_id query parameter is required"))
		return
	}

	data, filename, err := h.hireUC.ExportHires(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
