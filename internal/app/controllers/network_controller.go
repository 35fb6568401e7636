package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/burak/campusplace/internal/app/models"
	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/services"
	"github.com/burak/campusplace/internal/middleware"
)

// NetworkController handles partnership operations
type NetworkController struct {
	networkService *services.NetworkService
}

// NewNetworkController creates a new NetworkController
func NewNetworkController(networkService *services.NetworkService) *NetworkController {
	return &NetworkController{
		networkService: networkService,
	}
}

// Connect requests a partnership
// @Summary Request a partnership
// @Description Opens a pending partnership between the caller and a college or company
// @Tags network
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConnectRequest true "Recipient"
// @Success 201 {object} dto.APIResponse{data=models.Partnership} "Partnership requested"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Request already sent or active"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /network/connect [post]
func (c *NetworkController) Connect(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	var req dto.ConnectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid connect data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	partnership, err := c.networkService.Connect(ctx, userID, req.RecipientID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      partnership,
		Timestamp: time.Now(),
	})
}

// Respond resolves a pending partnership
// @Summary Respond to a partnership request
// @Description Accepts or rejects a pending partnership; only the recipient may respond
// @Tags network
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RespondRequest true "Resolution"
// @Success 200 {object} dto.APIResponse{data=models.Partnership} "Partnership resolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the recipient"
// @Failure 404 {object} dto.ErrorResponse "Partnership not found"
// @Failure 409 {object} dto.ErrorResponse "Partnership already resolved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /network/respond [post]
func (c *NetworkController) Respond(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	var req dto.RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid respond data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	partnership, err := c.networkService.Respond(ctx, userID, req.PartnershipID, models.PartnershipStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      partnership,
		Timestamp: time.Now(),
	})
}

// List returns the caller's partnerships
// @Summary List partnerships
// @Description Returns every partnership the caller appears in, on either side
// @Tags network
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Partnership} "Partnerships retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /network [get]
func (c *NetworkController) List(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	partnerships, err := c.networkService.List(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      partnerships,
		Timestamp: time.Now(),
	})
}

// Colleges returns all registered colleges
// @Summary List colleges
// @Description Returns every registered college for the partner search
// @Tags network
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CollegeSummary} "Colleges retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /network/colleges [get]
func (c *NetworkController) Colleges(ctx *gin.Context) {
	colleges, err := c.networkService.Colleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      colleges,
		Timestamp: time.Now(),
	})
}
