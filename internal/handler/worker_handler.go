package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"complaint_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkerHandler handles worker requests
type WorkerHandler struct {
	service service.WorkerService
}

// NewWorkerHandler creates a new WorkerHandler
func NewWorkerHandler(s service.WorkerService) *WorkerHandler {
	return &WorkerHandler{service: s}
}

func (h *WorkerHandler) GetAssignedComplaints(c *gin.Context) {
	workerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	complaints, err := h.service.ListAssigned(c.Request.Context(), workerID)
	if err != nil {
		log.Printf("Error getting assigned complaints: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assigned complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (h *WorkerHandler) ResolveComplaint(c *gin.Context) {
	workerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	complaintID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req struct {
		Code string `json:"code" binding:"required,len=6,numeric"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err = h.service.Resolve(c.Request.Context(), complaintID, workerID, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrNotAssignedToWorker) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrComplaintAlreadyResolved) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrWrongVerificationCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error resolving complaint: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve complaint"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint resolved successfully"})
}

// RegisterWorkerRoutes registers worker routes
func (h *WorkerHandler) RegisterWorkerRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, workerMW gin.HandlerFunc) {
	workerGroup := rg.Group("/worker")
	workerGroup.Use(authMW)
	workerGroup.Use(workerMW)
	{
		workerGroup.GET("/complaints", h.GetAssignedComplaints)
		workerGroup.POST("/complaints/:id/resolve", h.ResolveComplaint)
	}
}
