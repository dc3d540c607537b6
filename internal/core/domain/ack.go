package domain

import "errors"

var ErrInvalidAmount = errors.New("invalid payment amount")
var ErrPaymentProvider = errors.New("payment provider error")

// Write acknowledgments mirror the persistence service's result counts.
// A zero-count ack is a normal response, never an error: deleting or
// updating a document that does not exist simply reports zero.

type InsertAck struct {
	InsertedID string `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}
