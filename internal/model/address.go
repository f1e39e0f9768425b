package model

import "time"

// Address is the single residential address a user may register
type Address struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	HouseNo   int       `json:"house_no"`
	Tower     string    `json:"tower"`
	FloorNo   int       `json:"floor_no"`
	Locality  string    `json:"locality"`
	Area      string    `json:"area"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   int       `json:"pincode"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAddressRequest carries the address form fields. The numeric fields
// arrive as digit strings and are coerced after validation.
type CreateAddressRequest struct {
	HouseNo  string `json:"house_no" binding:"required,numeric"`
	Tower    string `json:"tower" binding:"required"`
	FloorNo  string `json:"floor_no" binding:"required,numeric"`
	Locality string `json:"locality" binding:"required"`
	Area     string `json:"area" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Pincode  string `json:"pincode" binding:"required,numeric"`
}
