package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog/log"
	"github.com/starthobby/backend/internal/dto"
	"github.com/starthobby/backend/internal/model"
	"github.com/starthobby/backend/internal/repository"
	"golang.org/x/sync/singleflight"
)

// ResultService owns the finalize pipeline and the submission/profile reads.
type ResultService interface {
	// Finalize persists the raw answers, generates a personality profile via
	// the chat-completion upstream and returns it. The submission row is
	// written before the upstream call and survives its failure; callers must
	// not assume atomicity between "answers recorded" and "profile generated".
	Finalize(ctx context.Context, req dto.FinalizeRequest) (*dto.PersonalityProfile, error)
	GetAllResults() ([]dto.SubmissionResponse, error)
	GetLatestProfile(email string) (*dto.AIProfileResponse, error)
	SaveProfile(req dto.SaveProfileRequest) error
}

type resultService struct {
	submissionRepo repository.SubmissionRepository
	profileRepo    repository.ProfileRepository
	openAI         OpenAIService
	generate       singleflight.Group
}

func NewResultService(
	submissionRepo repository.SubmissionRepository,
	profileRepo repository.ProfileRepository,
	openAI OpenAIService,
) ResultService {
	return &resultService{
		submissionRepo: submissionRepo,
		profileRepo:    profileRepo,
		openAI:         openAI,
	}
}

func (s *resultService) Finalize(ctx context.Context, req dto.FinalizeRequest) (*dto.PersonalityProfile, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}

	if err := s.recordSubmission(req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Finalize: failed to record submission")
		return nil, err
	}

	// Concurrent finalize calls each persist their own row, but identical
	// in-flight generations (same email and answers) are coalesced. The
	// shared call runs detached from any single caller's context so one
	// client's disconnect cannot fail the waiters; the upstream client
	// timeout still bounds it.
	v, err, shared := s.generate.Do(generationKey(req), func() (interface{}, error) {
		return s.generateProfile(context.WithoutCancel(ctx), req)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Info().Str("email", req.Email).Msg("Finalize: reused in-flight profile generation")
	}
	return v.(*dto.PersonalityProfile), nil
}

// generationKey identifies an in-flight profile generation. Keying on the
// email alone would hand a waiter a profile built from someone else's
// answers, so the submitted answer sets are part of the key.
func generationKey(req dto.FinalizeRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Email))
	for _, data := range []string{marshalGame(req.ClawGame), marshalGame(req.SnakeGame), marshalGame(req.CastleGame)} {
		h.Write([]byte{0})
		h.Write([]byte(data))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// recordSubmission writes exactly one submissions row per finalize call. A
// client-supplied submission id that already exists suppresses the duplicate.
func (s *resultService) recordSubmission(req dto.FinalizeRequest) error {
	submissionID := strings.TrimSpace(req.SubmissionID)
	if submissionID != "" {
		exists, err := s.submissionRepo.ExistsBySubmissionID(submissionID)
		if err != nil {
			return err
		}
		if exists {
			log.Info().Str("submission_id", submissionID).Msg("Finalize: duplicate submission id, row already recorded")
			return nil
		}
	} else {
		submissionID = uuid.NewString()
	}

	sub := model.Submission{
		SubmissionID: submissionID,
		Email:        req.Email,
		ClawData:     marshalGame(req.ClawGame),
		SnakeData:    marshalGame(req.SnakeGame),
		CastleData:   marshalGame(req.CastleGame),
	}
	return s.submissionRepo.Create(&sub)
}

// marshalGame serializes a game's answer set, producing the literal string
// "null" for absent games.
func marshalGame(set *dto.GameAnswerSet) string {
	data, err := json.Marshal(set)
	if err != nil {
		return "null"
	}
	return string(data)
}

func (s *resultService) generateProfile(ctx context.Context, req dto.FinalizeRequest) (*dto.PersonalityProfile, error) {
	content, err := s.openAI.CompleteChat(ctx, profileSystemPrompt, buildProfilePrompt(req))
	if err != nil {
		return nil, err
	}

	profile, err := parseProfile(content)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Finalize: could not parse profile from upstream content")
		return nil, err
	}

	s.persistProfile(req.Email, profile)
	return profile, nil
}

var codeFenceRe = regexp.MustCompile("```(?:json)?")

// parseProfile strips markdown code fences, parses the JSON (attempting a
// repair pass for near-JSON model output) and enforces the profile shape:
// traits and hobbies must be present, trait scores are clamped into [0, 10].
func parseProfile(content string) (*dto.PersonalityProfile, error) {
	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(content, ""))

	var profile dto.PersonalityProfile
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil {
			return nil, &MalformedResponseError{Reason: err.Error()}
		}
		if err := json.Unmarshal([]byte(repaired), &profile); err != nil {
			return nil, &MalformedResponseError{Reason: err.Error()}
		}
	}

	if profile.Traits == nil || profile.Hobbies == nil {
		return nil, &MalformedResponseError{Reason: "traits and hobbies must be present"}
	}
	for i := range profile.Traits {
		if profile.Traits[i].Score < 0 {
			profile.Traits[i].Score = 0
		}
		if profile.Traits[i].Score > 10 {
			profile.Traits[i].Score = 10
		}
	}
	return &profile, nil
}

// persistProfile is the best-effort leg of the pipeline: a failed write is
// logged but never fails the request.
func (s *resultService) persistProfile(email string, profile *dto.PersonalityProfile) {
	record := model.AIProfile{
		Email:              email,
		PersonalitySummary: profile.PersonalitySummary,
		Traits:             marshalJSONList(profile.Traits),
		Hobbies:            marshalJSONList(profile.Hobbies),
	}
	if err := s.profileRepo.Create(&record); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Finalize: failed to persist generated profile")
	}
}

func marshalJSONList(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func (s *resultService) GetAllResults() ([]dto.SubmissionResponse, error) {
	rows, err := s.submissionRepo.FindAllWithUsername()
	if err != nil {
		return nil, err
	}

	results := make([]dto.SubmissionResponse, 0, len(rows))
	for _, row := range rows {
		var item dto.SubmissionResponse
		if err := copier.Copy(&item, &row.Submission); err != nil {
			log.Error().Err(err).Uint("id", row.ID).Msg("GetAllResults: failed to map submission row")
			continue
		}
		item.Username = row.Username
		results = append(results, item)
	}
	return results, nil
}

func (s *resultService) GetLatestProfile(email string) (*dto.AIProfileResponse, error) {
	record, err := s.profileRepo.FindLatestByEmail(email)
	if err != nil {
		return nil, err
	}

	resp := dto.AIProfileResponse{
		Email:              record.Email,
		PersonalitySummary: record.PersonalitySummary,
		Traits:             []dto.TraitScore{},
		Hobbies:            []dto.HobbyRecommendation{},
		CreatedAt:          record.CreatedAt,
	}
	if err := json.Unmarshal([]byte(record.Traits), &resp.Traits); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("GetLatestProfile: stored traits are not valid JSON")
	}
	if err := json.Unmarshal([]byte(record.Hobbies), &resp.Hobbies); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("GetLatestProfile: stored hobbies are not valid JSON")
	}
	return &resp, nil
}

func (s *resultService) SaveProfile(req dto.SaveProfileRequest) error {
	if req.Traits == nil {
		req.Traits = []dto.TraitScore{}
	}
	if req.Hobbies == nil {
		req.Hobbies = []dto.HobbyRecommendation{}
	}
	record := model.AIProfile{
		Email:              req.Email,
		PersonalitySummary: req.PersonalitySummary,
		Traits:             marshalJSONList(req.Traits),
		Hobbies:            marshalJSONList(req.Hobbies),
	}
	return s.profileRepo.Create(&record)
}
