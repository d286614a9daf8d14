package model

import "errors"

var (
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
	ErrPromoExhausted  = errors.New("promo code space exhausted")
	ErrResultNotFound  = errors.New("result not found")
)
