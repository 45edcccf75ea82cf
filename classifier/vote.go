// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import "github.com/danielhkuo/bio-mbti/models"

// axes in type-code order. The first letter of each pair wins ties.
var axes = [4][2]string{
	{models.AnswerE, models.AnswerI},
	{models.AnswerA, models.AnswerC},
	{models.AnswerG, models.AnswerL},
	{models.AnswerH, models.AnswerR},
}

// LocalTypeCode computes the type code by majority vote on each axis.
// The result is deterministic: a tie resolves to E, A, G or H.
func LocalTypeCode(answers []models.Answer) string {
	counts := make(map[string]int, 8)
	for _, answer := range answers {
		counts[answer.AnswerValue]++
	}

	code := make([]byte, 0, len(axes))
	for _, axis := range axes {
		if counts[axis[0]] >= counts[axis[1]] {
			code = append(code, axis[0]...)
		} else {
			code = append(code, axis[1]...)
		}
	}
	return string(code)
}
