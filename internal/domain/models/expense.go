package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShareStatus tracks where one member's payment sits in the approval workflow.
type ShareStatus string

const (
	StatusUnpaid          ShareStatus = "UNPAID"
	StatusPendingCash     ShareStatus = "PENDING_CASH_APPROVAL"
	StatusPendingTransfer ShareStatus = "PENDING_TRANSFER_APPROVAL"
	StatusApproved        ShareStatus = "APPROVED"
	StatusRejected        ShareStatus = "REJECTED"
)

// OrDefault maps a missing status to UNPAID. Older expense documents were
// written without the field, so every status read goes through here.
func (s ShareStatus) OrDefault() ShareStatus {
	if s == "" {
		return StatusUnpaid
	}
	return s
}

// IsPending reports whether the share is waiting on the payer's decision.
func (s ShareStatus) IsPending() bool {
	st := s.OrDefault()
	return st == StatusPendingCash || st == StatusPendingTransfer
}

// PaymentMethod is how a member claims to have settled their share.
type PaymentMethod string

const (
	MethodNone     PaymentMethod = ""
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
)

// ExpenseShare is one member's portion of an expense. Status, PaymentMethod
// and ProofImage are only mutated through the settlement state machine.
type ExpenseShare struct {
	UserId        primitive.ObjectID `bson:"user_id" json:"userId"`
	Amount        float64            `bson:"amount" json:"amount"`
	PaymentMethod PaymentMethod      `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	ProofImage    string             `bson:"proof_image,omitempty" json:"proofImage,omitempty"`
	Status        ShareStatus        `bson:"status" json:"status"`
}

// Expense is a whole-document unit: shares are created with it and every
// share mutation rewrites the full document. Version backs the optimistic
// concurrency check on replace.
type Expense struct {
	Id           primitive.ObjectID `bson:"_id" json:"id"`
	TeamId       primitive.ObjectID `bson:"team_id" json:"teamId"`
	Description  string             `bson:"description" json:"description"`
	Amount       float64            `bson:"amount" json:"amount"`
	PaidByUserId primitive.ObjectID `bson:"paid_by_user_id" json:"paidByUserId"`
	Date         time.Time          `bson:"date" json:"date"`
	Shares       []ExpenseShare     `bson:"shares" json:"shares"`
	Version      int64              `bson:"version" json:"-"`
}

// ShareOf returns the share belonging to userId, or nil.
func (e *Expense) ShareOf(userId primitive.ObjectID) *ExpenseShare {
	for i := range e.Shares {
		if e.Shares[i].UserId == userId {
			return &e.Shares[i]
		}
	}
	return nil
}
