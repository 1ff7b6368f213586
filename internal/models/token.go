package models

// MultiUseTokenResult is the outcome of promoting a single-use tokenization
// token to a durable vault token, from either the live gateway or the mock
// tokenizer.
type MultiUseTokenResult struct {
	MultiUseToken string       `json:"multiUseToken"`
	Brand         string       `json:"brand"`
	Last4         string       `json:"last4"`
	ExpiryMonth   string       `json:"expiryMonth"`
	ExpiryYear    string       `json:"expiryYear"`
	Customer      CustomerData `json:"customerData"`
}
