package model

import "time"

// GradingResult итог проверки одной отправки
type GradingResult struct {
	CorrectCount int  `json:"correctCount"`
	Total        int  `json:"total"`
	AllCorrect   bool `json:"allCorrect"`
}

// ResultRecord последний результат пользователя, хранится по идентификатору чата
type ResultRecord struct {
	ChatID      int64     `json:"chatId"`
	Answers     []int     `json:"answers"`
	PromoCode   string    `json:"promoCode,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	GradingResult
}
