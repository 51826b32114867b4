package service

import (
	"encoding/json"
	"strings"

	"github.com/starthobby/backend/internal/dto"
)

const profileSystemPrompt = "You are a warm, perceptive personality analyst for StartHobby, a service that recommends hobbies based on short quiz answers. You always respond with strict JSON and nothing else."

// taggedAnswer is one question/answer pair tagged with the mini-game it came
// from, in the order the games were played.
type taggedAnswer struct {
	Game     string `json:"game"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func collectAnswers(req dto.FinalizeRequest) []taggedAnswer {
	answers := make([]taggedAnswer, 0)
	answers = appendGameAnswers(answers, "claw machine", req.ClawGame)
	answers = appendGameAnswers(answers, "snake and ladder", req.SnakeGame)
	answers = appendGameAnswers(answers, "castle quiz", req.CastleGame)
	return answers
}

func appendGameAnswers(dst []taggedAnswer, game string, set *dto.GameAnswerSet) []taggedAnswer {
	if set == nil {
		return dst
	}
	for _, a := range set.Answers {
		dst = append(dst, taggedAnswer{Game: game, Question: a.Question, Answer: a.Answer})
	}
	return dst
}

// buildProfilePrompt embeds the flattened, pretty-printed answers in a fixed
// instruction template that demands the exact PersonalityProfile JSON shape.
func buildProfilePrompt(req dto.FinalizeRequest) string {
	pretty, err := json.MarshalIndent(collectAnswers(req), "", "  ")
	if err != nil {
		pretty = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("A user played three mini-games (claw machine, snake and ladder, castle quiz) and answered the quiz questions below.\n\n")
	b.WriteString("Answers:\n")
	b.Write(pretty)
	b.WriteString("\n\n")
	b.WriteString("Based on these answers, write a personality profile and recommend hobbies the user would genuinely enjoy.\n\n")
	b.WriteString("Respond with a single JSON object of exactly this shape:\n")
	b.WriteString("{\n")
	b.WriteString("  \"personalitySummary\": \"two or three friendly sentences describing the user\",\n")
	b.WriteString("  \"traits\": [{\"trait\": \"trait name\", \"score\": 0-10}],\n")
	b.WriteString("  \"hobbies\": [{\"name\": \"hobby name\", \"why\": \"why it fits this user\", \"category\": \"creative|active|social|relaxing|intellectual\", \"social\": true or false, \"registrationLink\": \"optional URL of a place to start\"}]\n")
	b.WriteString("}\n\n")
	b.WriteString("Give 4 to 6 traits and 3 to 5 hobbies. Scores are numbers between 0 and 10.\n")
	b.WriteString("Return only the JSON object. Do not wrap it in markdown code fences.\n")
	return b.String()
}
