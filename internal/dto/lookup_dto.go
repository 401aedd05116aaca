package dto

import "github.com/ahmetcoskunkizilkaya/idcaller/internal/models"

// NameResult is one ranked candidate from a name search. It never carries
// an email.
type NameResult struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	SpamCount int64  `json:"spam_count"`
}

// NumberResult is one record from a number search. Spam-only records have no
// name and set Message instead.
type NumberResult struct {
	Name      string  `json:"name,omitempty"`
	Number    string  `json:"number"`
	SpamCount int64   `json:"spam_count"`
	Email     *string `json:"email,omitempty"`
	Message   string  `json:"message,omitempty"`
}

type AddContactRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Email  string `json:"email,omitempty"`
}

type ContactResponse struct {
	Message string          `json:"message"`
	Contact *models.Contact `json:"contact"`
}

type ReportSpamRequest struct {
	Number string `json:"number"`
}

type SpamReportResponse struct {
	Message string             `json:"message"`
	Report  *models.SpamReport `json:"report"`
}
