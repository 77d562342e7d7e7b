package models

import "time"

type OrderStatus string

// Badge taxonomy only; the authoritative value always comes from the server.
const (
	OrderCompleted OrderStatus = "completed"
	OrderPending   OrderStatus = "pending"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
	OrderFailed    OrderStatus = "failed"
)

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	UserName      string      `json:"userName,omitempty"`
	CourseID      string      `json:"courseId"`
	CourseName    string      `json:"courseName,omitempty"`
	PaymentInfo   PaymentInfo `json:"payment_info"`
	Status        OrderStatus `json:"status"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type PaymentInfo struct {
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
	Amount float64     `json:"amount"`
}
