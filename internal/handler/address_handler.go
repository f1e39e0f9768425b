package handler

import (
	"errors"
	"log"
	"net/http"

	"complaint_tracker/internal/model"
	"complaint_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles address requests
type AddressHandler struct {
	service service.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(s service.AddressService) *AddressHandler {
	return &AddressHandler{service: s}
}

func (h *AddressHandler) CreateAddress(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	address, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrAddressAlreadyAdded) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrAddressNotNumeric) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error creating address: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address added successfully",
		"address": address,
	})
}

func (h *AddressHandler) GetMyAddress(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	address, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting address: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve address"})
		return
	}
	c.JSON(http.StatusOK, address)
}

// RegisterAddressRoutes registers address routes
func (h *AddressHandler) RegisterAddressRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userMW gin.HandlerFunc) {
	addressGroup := rg.Group("/address")
	addressGroup.Use(authMW)
	addressGroup.Use(userMW)
	{
		addressGroup.POST("", h.CreateAddress)
		addressGroup.GET("", h.GetMyAddress)
	}
}
