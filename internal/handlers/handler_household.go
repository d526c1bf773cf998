package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// householdHandler handles HTTP requests related to households and membership.
type householdHandler struct {
	householdService portssvc.HouseholdSvcFacade
}

func newHouseholdHandler(hs portssvc.HouseholdSvcFacade) *householdHandler {
	return &householdHandler{householdService: hs}
}

// createHousehold godoc
// @Summary Create a household
// @Description Creates a household owned by the caller with ARS and USD enabled
// @Tags households
// @Accept  json
// @Produce  json
// @Param   household body dto.CreateHouseholdRequest true "Household details"
// @Success 201 {object} dto.HouseholdResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households [post]
func (h *householdHandler) createHousehold(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateHousehold", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	household, err := h.householdService.CreateHousehold(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create household")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHouseholdResponse(household))
}

// listHouseholds godoc
// @Summary List my households
// @Description Lists the households the caller belongs to, with the caller's role
// @Tags households
// @Produce  json
// @Success 200 {object} dto.ListHouseholdsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households [get]
func (h *householdHandler) listHouseholds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	households, err := h.householdService.ListUserHouseholds(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list households")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHouseholdsResponse(households))
}

// listMembers godoc
// @Summary List household members
// @Tags households
// @Produce  json
// @Param household_id path string true "Household ID"
// @Success 200 {array} dto.HouseholdMemberResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/members [get]
func (h *householdHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	members, err := h.householdService.ListMembers(c.Request.Context(), c.Param("household_id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list household members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHouseholdMembersResponse(members))
}

// inviteMember godoc
// @Summary Add a member
// @Description Adds a registered user, found by email, to the household. Owner only.
// @Tags households
// @Accept  json
// @Produce  json
// @Param household_id path string true "Household ID"
// @Param   member body dto.InviteMemberRequest true "Member email"
// @Success 201 {object} dto.HouseholdMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No user with that email"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /households/{household_id}/members [post]
func (h *householdHandler) inviteMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	member, err := h.householdService.InviteMember(c.Request.Context(), c.Param("household_id"), req.Email, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add household member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHouseholdMemberResponse(member))
}

// leaveHousehold godoc
// @Summary Leave a household
// @Description Removes the caller's membership. An owner cannot leave while other members remain.
// @Tags households
// @Param household_id path string true "Household ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/members/me [delete]
func (h *householdHandler) leaveHousehold(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.householdService.LeaveHousehold(c.Request.Context(), c.Param("household_id"), userID); err != nil {
		respondWithError(c, logger, err, "Failed to leave household")
		return
	}
	c.Status(http.StatusNoContent)
}
