package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/burak/campusplace/internal/app/models/dto"
	"github.com/burak/campusplace/internal/app/services"
	"github.com/burak/campusplace/internal/middleware"
)

const defaultRecordsLimit = 50

// PlacementController handles spreadsheet uploads and the analytics reads
type PlacementController struct {
	placementService *services.PlacementService
	maxFileSize      int64
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService, maxFileSizeMB int) *PlacementController {
	return &PlacementController{
		placementService: placementService,
		maxFileSize:      int64(maxFileSizeMB) * 1024 * 1024,
	}
}

func authenticatedUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}

// Upload imports a placement spreadsheet
// @Summary Upload placement data
// @Description Imports an .xlsx spreadsheet of placement records for one class year and department
// @Tags placements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet file (.xlsx)"
// @Param classYear formData string true "Class year, e.g. 2025"
// @Param department formData string true "Department, e.g. CSE"
// @Param replace formData bool false "Replace existing data for this partition"
// @Success 200 {object} dto.APIResponse{data=dto.ImportSummary} "Data imported successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid file or no valid records"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a college account"
// @Failure 409 {object} dto.ErrorResponse "Partition already holds data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/upload [post]
func (c *PlacementController) Upload(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Spreadsheet file is required").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if fileHeader.Size > c.maxFileSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is too large").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	summary, err := c.placementService.Upload(ctx, services.UploadRequest{
		UserID:     userID,
		ClassYear:  ctx.PostForm("classYear"),
		Department: ctx.PostForm("department"),
		Replace:    ctx.PostForm("replace") == "true",
		File:       file,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}

// Filters returns the facet values for the caller's college
// @Summary List filter facets
// @Description Returns the class years and departments with stored data, plus departments per year
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FiltersResponse} "Facets retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a college account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/filters [get]
func (c *PlacementController) Filters(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	filters, err := c.placementService.Filters(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      filters,
		Timestamp: time.Now(),
	})
}

// Records returns a filtered page of placement records
// @Summary List placement records
// @Description Returns stored records, optionally filtered by year and department, ordered by student name
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param year query string false "Class year filter, 'all' for every year"
// @Param department query string false "Department filter, 'all' for every department"
// @Param limit query int false "Page size" default(50)
// @Param skip query int false "Rows to skip" default(0)
// @Success 200 {object} dto.APIResponse{data=dto.RecordsResponse} "Records retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a college account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/records [get]
func (c *PlacementController) Records(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultRecordsLimit)))
	if err != nil || limit < 0 {
		limit = defaultRecordsLimit
	}
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	records, err := c.placementService.Records(ctx, services.RecordsRequest{
		UserID:     userID,
		Year:       services.YearFilter(ctx.Query("year")),
		Department: services.DepartmentFilter(ctx.Query("department")),
		Limit:      limit,
		Skip:       skip,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// Stats returns the dashboard analytics
// @Summary Get dashboard statistics
// @Description Returns totals, the department chart, the salary distribution and the monthly trend
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param year query string false "Class year filter, 'all' for every year"
// @Param department query string false "Department filter, 'all' for every department"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Statistics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a college account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/stats [get]
func (c *PlacementController) Stats(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.placementService.Stats(ctx, services.StatsRequest{
		UserID:     userID,
		Year:       services.YearFilter(ctx.Query("year")),
		Department: services.DepartmentFilter(ctx.Query("department")),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// Companies returns the merged company rollup
// @Summary List companies
// @Description Merges companies from placement records and posted drives into one summary per name
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param year query string false "Class year filter, 'all' for every year"
// @Param department query string false "Department filter, 'all' for every department"
// @Param filter query string false "participated (default), active or drives"
// @Success 200 {object} dto.APIResponse{data=dto.CompaniesResponse} "Companies retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not a college account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/companies [get]
func (c *PlacementController) Companies(ctx *gin.Context) {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return
	}

	companies, err := c.placementService.Companies(ctx, services.CompaniesRequest{
		UserID:        userID,
		Year:          services.YearFilter(ctx.Query("year")),
		Department:    services.DepartmentFilter(ctx.Query("department")),
		Participation: services.ParseParticipation(ctx.Query("filter")),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      companies,
		Timestamp: time.Now(),
	})
}
