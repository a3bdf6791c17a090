package http

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/model"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/pkg/response"
)

// Connect godoc
// @Summary     Start calendar authorization
// @Description Generates the provider consent URL for the PKCE flow.
// @Tags        OAuth
// @Produce     json
// @Param       user_id query string true "User ID"
// @Success     200 {object} connectResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/scheduling/oauth/connect [GET]
func (h *handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConnectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.sessionUC.InitiateAuthorization(ctx, model.Scope{UserID: req.UserID})
	if err != nil {
		h.l.Errorf(ctx, "sessionUC.InitiateAuthorization: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, connectResp{AuthURL: output.AuthURL, State: output.State})
}

// Callback godoc
// @Summary     Complete calendar authorization
// @Description Handles the provider redirect: validates state and exchanges the code for tokens.
// @Tags        OAuth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "CSRF state"
// @Success     200 {object} callbackResp
// @Failure     400 {object} response.Resp "Bad Request - state mismatch"
// @Router      /api/v1/scheduling/oauth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.sessionUC.CompleteAuthorization(ctx, session.CompleteInput{
		Code:  req.Code,
		State: req.State,
	})
	if err != nil {
		h.l.Errorf(ctx, "sessionUC.CompleteAuthorization: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, callbackResp{UserID: output.UserID, Connected: true})
}

// Disconnect godoc
// @Summary     Disconnect calendar
// @Description Best-effort revokes provider tokens and marks the connection disconnected.
// @Tags        OAuth
// @Produce     json
// @Param       user_id query string true "User ID"
// @Success     200 {object} map[string]interface{}
// @Router      /api/v1/scheduling/oauth/connection [DELETE]
func (h *handler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConnectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// Revoke never fails: disconnection must succeed locally regardless.
	_ = h.sessionUC.Revoke(ctx, model.Scope{UserID: req.UserID})

	response.OK(c, gin.H{"disconnected": true})
}

// CreateMeeting godoc
// @Summary     Book a meeting with a lead
// @Description Finds the first conflict-free slot in the horizon and books it on the primary calendar.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body createMeetingReq true "Booking request"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Reauthorization required"
// @Failure     409 {object} response.Resp "Not connected / no availability"
// @Failure     502 {object} response.Resp "Calendar provider error"
// @Router      /api/v1/scheduling/meetings [POST]
func (h *handler) CreateMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateMeetingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateMeetingForLead(ctx, model.Scope{UserID: req.UserID}, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateMeetingForLead: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBookingResp(output))
}

// AvailableSlots godoc
// @Summary     List available slots
// @Description Collects up to count conflict-free slots over the default horizon.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body slotsReq true "Slot listing request"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Not connected"
// @Router      /api/v1/scheduling/slots [POST]
func (h *handler) AvailableSlots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetAvailableSlots(ctx, model.Scope{UserID: req.UserID}, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAvailableSlots: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSlotsResp(output))
}
