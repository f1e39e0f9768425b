package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"complaint_tracker/internal/model"
	"complaint_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrator requests
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

func (h *AdminHandler) GetAllComplaints(c *gin.Context) {
	var filters model.ComplaintFilters
	if priorityParam := c.Query("priority"); priorityParam != "" {
		priority := model.ComplaintPriority(priorityParam)
		if !model.IsValidPriority(priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority, use 'Urgent' or 'Normal'"})
			return
		}
		filters.Priority = &priority
	}
	if statusParam := c.Query("status"); statusParam != "" {
		status := model.ComplaintStatus(statusParam)
		if !model.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status, use 'Pending', 'In Progress' or 'Resolved'"})
			return
		}
		filters.Status = &status
	}
	if scopeParam := c.Query("scope"); scopeParam != "" {
		scope := model.ComplaintScope(scopeParam)
		if !model.IsValidScope(scope) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope, use 'Personal' or 'Community'"})
			return
		}
		filters.Scope = &scope
	}
	if workerParam := c.Query("worker_name"); workerParam != "" {
		filters.WorkerName = &workerParam
	}
	if c.Query("unassigned") == "true" {
		filters.Unassigned = true
	}

	complaints, err := h.service.ListComplaints(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error getting all complaints for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (h *AdminHandler) AssignComplaint(c *gin.Context) {
	complaintID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req struct {
		WorkerID int `json:"worker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	worker, err := h.service.AssignComplaint(c.Request.Context(), complaintID, req.WorkerID)
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrAlreadyAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error assigning complaint: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign complaint"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Complaint assigned successfully",
		"worker_id":   worker.ID,
		"worker_name": worker.Name,
	})
}

func (h *AdminHandler) UpdateComplaintStatus(c *gin.Context) {
	complaintID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err = h.service.UpdateStatus(c.Request.Context(), complaintID, model.ComplaintStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrCannotDowngrade) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error updating complaint status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

func (h *AdminHandler) AddWorker(c *gin.Context) {
	var req model.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	worker, err := h.service.AddWorker(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrWorkerAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error adding worker: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add worker"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Worker added successfully",
		"worker":  worker,
	})
}

func (h *AdminHandler) GetAllWorkers(c *gin.Context) {
	workers, err := h.service.ListWorkers(c.Request.Context())
	if err != nil {
		log.Printf("Error getting workers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workers"})
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (h *AdminHandler) DeleteWorker(c *gin.Context) {
	workerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID"})
		return
	}

	err = h.service.DeleteWorker(c.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting worker: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete worker"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted successfully"})
}

// RegisterAdminRoutes registers admin routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	adminGroup := rg.Group("/admin")
	adminGroup.Use(authMW)
	adminGroup.Use(adminMW)
	{
		adminGroup.GET("/complaints", h.GetAllComplaints)
		adminGroup.POST("/complaints/:id/assign", h.AssignComplaint)
		adminGroup.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)

		adminGroup.POST("/workers", h.AddWorker)
		adminGroup.GET("/workers", h.GetAllWorkers)
		adminGroup.DELETE("/workers/:id", h.DeleteWorker)
	}
}
