package handler

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"complaint_tracker/internal/middleware"
	"complaint_tracker/internal/model"
	"complaint_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ComplaintHandler handles resident complaint requests
type ComplaintHandler struct {
	service service.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler
func NewComplaintHandler(s service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: s}
}

// Helper to get authenticated principal ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// SubmitComplaint accepts the multipart submission form. The image part is
// optional; everything else arrives as form fields.
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	input := model.CreateComplaintInput{
		ScopeFlag:   c.PostForm("scope"),
		Type:        c.PostForm("type"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		Location:    c.PostForm("location"),
	}
	if input.Type == "" || input.Description == "" || input.Priority == "" || input.ScopeFlag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope, type, description and priority are required"})
		return
	}

	image, err := c.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload: " + err.Error()})
		return
	}

	complaint, emailSent, err := h.service.Submit(c.Request.Context(), userID, input, image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScope) || errors.Is(err, service.ErrInvalidPriority) ||
			errors.Is(err, service.ErrInvalidFileFormat) || errors.Is(err, service.ErrFileSizeExceeded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrAddressRequired) {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error submitting complaint: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit complaint"})
		}
		return
	}

	message := "Complaint submitted successfully, a verification code has been sent to your email"
	if !emailSent {
		message = "Complaint submitted successfully, but the confirmation email could not be sent"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    message,
		"complaint":  complaint,
		"email_sent": emailSent,
	})
}

func (h *ComplaintHandler) GetMyComplaints(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	complaints, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting user complaints: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	complaintID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	err = h.service.Delete(c.Request.Context(), complaintID, userID)
	if err != nil {
		if errors.Is(err, service.ErrComplaintNotPending) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting complaint: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete complaint"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}

func (h *ComplaintHandler) GiveFeedback(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	complaintID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err = h.service.GiveFeedback(c.Request.Context(), complaintID, userID, req.Rating, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotAllowed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error saving feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your feedback"})
}

func (h *ComplaintHandler) GetComplaintImage(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	complaintID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	filePath, fileName, err := h.service.GetImagePath(c.Request.Context(), complaintID, userID)
	if err != nil {
		if errors.Is(err, service.ErrComplaintNotFound) || errors.Is(err, service.ErrNoImage) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error getting complaint image path: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get complaint image"})
		}
		return
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image file not found on server"})
		return
	}

	c.FileAttachment(filePath, fileName)
}

// RegisterComplaintRoutes registers resident complaint routes
func (h *ComplaintHandler) RegisterComplaintRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userMW gin.HandlerFunc) {
	complaintGroup := rg.Group("/complaints")
	complaintGroup.Use(authMW)
	complaintGroup.Use(userMW)
	{
		complaintGroup.POST("", h.SubmitComplaint)
		complaintGroup.GET("", h.GetMyComplaints)
		complaintGroup.DELETE("/:id", h.DeleteComplaint)
		complaintGroup.POST("/:id/feedback", h.GiveFeedback)
		complaintGroup.GET("/:id/image", h.GetComplaintImage)
	}
}
