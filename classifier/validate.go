// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"unicode/utf8"

	"github.com/danielhkuo/bio-mbti/models"
)

// ValidAnswerValues lists the accepted answer symbols in axis order
var ValidAnswerValues = []string{
	models.AnswerE, models.AnswerI,
	models.AnswerA, models.AnswerC,
	models.AnswerG, models.AnswerL,
	models.AnswerH, models.AnswerR,
}

const invalidValueMessage = "Invalid answer value. Must be one of: E, I, A, C, G, L, H, R"

// ValidateAnswers checks the whole answer set before anything else happens.
// Returns a *models.ValidationError describing the first problem found.
func ValidateAnswers(answers []models.Answer) error {
	if len(answers) == 0 {
		return models.NewValidationError("No answers provided.")
	}
	if len(answers) > models.MaxAnswers {
		return models.NewValidationError("Too many answers. Maximum 20 answers allowed.")
	}

	for _, answer := range answers {
		if answer.Question == "" {
			return models.NewValidationError("Invalid answer format: question is required.")
		}
		if !isValidAnswerValue(answer.AnswerValue) {
			return models.NewValidationError(invalidValueMessage)
		}
		if utf8.RuneCountInString(answer.Question) > models.MaxQuestionLength {
			return models.NewValidationError("Question too long. Maximum 500 characters allowed.")
		}
	}

	return nil
}

func isValidAnswerValue(value string) bool {
	for _, v := range ValidAnswerValues {
		if v == value {
			return true
		}
	}
	return false
}
