package service

import (
	"testing"

	"github.com/starthobby/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectAnswersTagsAndOrders(t *testing.T) {
	req := dto.FinalizeRequest{
		Email: "a@b.com",
		ClawGame: &dto.GameAnswerSet{
			Answers: []dto.GameAnswer{{Question: "C1", Answer: "claw answer"}},
		},
		CastleGame: &dto.GameAnswerSet{
			Answers: []dto.GameAnswer{{Question: "K1", Answer: "castle answer"}},
		},
	}

	answers := collectAnswers(req)
	require.Len(t, answers, 2)
	assert.Equal(t, "claw machine", answers[0].Game)
	assert.Equal(t, "C1", answers[0].Question)
	assert.Equal(t, "castle quiz", answers[1].Game)
	assert.Equal(t, "castle answer", answers[1].Answer)
}

func TestCollectAnswersSkipsAbsentGames(t *testing.T) {
	answers := collectAnswers(dto.FinalizeRequest{Email: "a@b.com"})
	assert.Empty(t, answers)
}

func TestBuildProfilePromptEmbedsAnswers(t *testing.T) {
	prompt := buildProfilePrompt(dto.FinalizeRequest{
		Email: "a@b.com",
		SnakeGame: &dto.GameAnswerSet{
			Answers: []dto.GameAnswer{{Question: "What relaxes you?", Answer: "Long walks"}},
		},
	})

	assert.Contains(t, prompt, "snake and ladder")
	assert.Contains(t, prompt, "What relaxes you?")
	assert.Contains(t, prompt, "Long walks")
	assert.Contains(t, prompt, "personalitySummary")
	assert.Contains(t, prompt, "Do not wrap it in markdown code fences")
}
