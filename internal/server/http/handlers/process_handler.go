package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/dto"
)

// ProcessHandler manages workflow endpoints of a brand.
type ProcessHandler struct {
	facade ProcessFacade
}

// NewProcessHandler constructs ProcessHandler.
func NewProcessHandler(facade ProcessFacade) *ProcessHandler {
	return &ProcessHandler{facade: facade}
}

// Status handles GET /api/brands/:brandID/process.
func (h *ProcessHandler) Status(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	status, err := h.facade.ProcessStatus(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand_id": brandID, "status": string(status)})
}

// History handles GET /api/brands/:brandID/process/history.
func (h *ProcessHandler) History(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	history, err := h.facade.ProcessHistory(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TransitionResponse, 0, len(history))
	for _, record := range history {
		response = append(response, toTransitionResponse(record))
	}
	c.JSON(http.StatusOK, response)
}

// SampleLeft handles POST /api/brands/:brandID/process/sample-left.
func (h *ProcessHandler) SampleLeft(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	proc, err := h.facade.MarkSampleLeft(c.Request.Context(), brandID, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProcessResponse(proc))
}

// Cancel handles POST /api/brands/:brandID/process/cancel.
func (h *ProcessHandler) Cancel(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	proc, err := h.facade.CancelProcess(c.Request.Context(), brandID, req.Reason, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProcessResponse(proc))
}

// Transition handles POST /api/brands/:brandID/process/transition.
func (h *ProcessHandler) Transition(c *gin.Context) {
	brandID, ok := pathID(c, "brandID")
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	proc, err := h.facade.TransitionProcess(c.Request.Context(), brandID, model.ProcessStatus(req.To), req.Payload, CurrentActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProcessResponse(proc))
}

func toProcessResponse(proc *model.BrandProcess) dto.ProcessResponse {
	return dto.ProcessResponse{
		BrandID:   proc.BrandID,
		Status:    string(proc.Status),
		Version:   proc.Version,
		UpdatedAt: proc.UpdatedAt,
	}
}

func toTransitionResponse(record model.ProcessTransition) dto.TransitionResponse {
	resp := dto.TransitionResponse{
		ToStatus:  string(record.ToStatus),
		ActorID:   record.ActorID,
		Payload:   record.Payload,
		CreatedAt: record.CreatedAt,
	}
	if record.FromStatus != nil {
		from := string(*record.FromStatus)
		resp.FromStatus = &from
	}
	return resp
}
