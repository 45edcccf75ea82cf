// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classifier

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/registry"
)

// maxPromptQuestionLength caps each question inside the prompt
const maxPromptQuestionLength = 200

// SanitizeForPrompt strips angle brackets, flattens newlines and truncates
// to keep user-supplied text from reshaping the prompt.
func SanitizeForPrompt(text string) string {
	text = strings.NewReplacer("<", "", ">", "", "\r\n", " ", "\n", " ", "\r", " ").Replace(text)

	runes := []rune(text)
	if len(runes) > maxPromptQuestionLength {
		runes = runes[:maxPromptQuestionLength]
	}
	return string(runes)
}

// BuildPrompt renders the analysis prompt: axis legend, numbered transcript,
// and the full code-to-animal table with each type's canonical keywords so
// the model cannot invent an animal.
func BuildPrompt(answers []models.Answer, reg *registry.Registry) string {
	var transcript strings.Builder
	for i, answer := range answers {
		if i > 0 {
			transcript.WriteByte('\n')
		}
		fmt.Fprintf(&transcript, "Q%d: %s - Answer: %s", i+1, SanitizeForPrompt(answer.Question), answer.AnswerValue)
	}

	var mapping strings.Builder
	for i, entry := range reg.AnimalMapping() {
		if i > 0 {
			mapping.WriteByte('\n')
		}
		fmt.Fprintf(&mapping, "- %s: %s", entry.Code, entry.Animal)
		if def, ok := reg.Lookup(entry.Code); ok && len(def.DefaultKeywords) > 0 {
			fmt.Fprintf(&mapping, " (%s)", strings.Join(def.DefaultKeywords, " "))
		}
	}

	return fmt.Sprintf(promptTemplate, reg.Len(), transcript.String(), mapping.String())
}

const promptTemplate = `You are a Bio-MBTI analyst. Bio-MBTI describes environmental personality types through Arctic wildlife. Classify the user into one of the %d Bio-MBTI types using their answers.

**Axes:**
1. E (Together) / I (Alone) - social preference
2. A (Active) / C (Cautious) - action style
3. G (Global) / L (Local) - perspective scope
4. H (Heart-driven) / R (Reason-driven) - decision style

**User answers:**
%s

**Type code to animal (use exactly this animal; suggested keywords in parentheses):**
%s

**Steps:**
1. Read each answer and note which pole of which axis it supports.
2. Count E vs I, A vs C, G vs L, H vs R.
3. Take the dominant letter of every axis.
4. Join the four letters into a type code such as ICLR or EAGH.
5. Find the animal for that code in the table above.
6. Write a creative 2-3 sentence description in Korean featuring exactly that animal.

**Respond with JSON only:**
{
  "typeCode": "4_LETTER_CODE",
  "description": "Korean description built around the animal from the table.",
  "keywords": ["#typeCode", "#animalName", "#keyword1", "#keyword2", "#keyword3"]
}

Rules:
- Do not include a "title" field.
- Never use an animal other than the one mapped to the chosen code.
- keywords holds the type code, the animal name and 2-3 Korean keywords from the description, each prefixed with #.
Respond ONLY with valid JSON, no additional text.`
