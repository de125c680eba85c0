package model

import "time"

// Customer is a buying counterparty of the export company.
// Email is unique across customers.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Company   *string
	Address   *string
	City      *string
	Country   string
	Language  string
	CreatedAt time.Time
}
