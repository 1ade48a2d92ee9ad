package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskbridge/config"
	convmocks "taskbridge/internal/conversation/mocks"
	jobmocks "taskbridge/internal/job/mocks"
	"taskbridge/internal/proposal"
	proposalmocks "taskbridge/internal/proposal/mocks"
	"taskbridge/internal/proposal/model"
	"taskbridge/internal/review"
	reviewmocks "taskbridge/internal/review/mocks"
	"taskbridge/internal/user"
	usermocks "taskbridge/internal/user/mocks"
	appErrors "taskbridge/pkg/errors"
	"taskbridge/pkg/logger"
	"taskbridge/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	cfg           *config.Config
	users         *usermocks.MockUserUsecase
	conversations *convmocks.MockConversationUsecase
	proposals     *proposalmocks.MockProposalUsecase
	jobs          *jobmocks.MockJobUsecase
	reviews       *reviewmocks.MockReviewUsecase
	handler       http.Handler
}

func newHarness(t *testing.T, cfg *config.Config) harness {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := harness{
		cfg:           cfg,
		users:         usermocks.NewMockUserUsecase(ctrl),
		conversations: convmocks.NewMockConversationUsecase(ctrl),
		proposals:     proposalmocks.NewMockProposalUsecase(ctrl),
		jobs:          jobmocks.NewMockJobUsecase(ctrl),
		reviews:       reviewmocks.NewMockReviewUsecase(ctrl),
	}
	srv := New(cfg, Usecases{
		Users:         h.users,
		Conversations: h.conversations,
		Proposals:     h.proposals,
		Jobs:          h.jobs,
		Reviews:       h.reviews,
	}, logger.Logger{})
	h.handler = srv.Handler()
	return h
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Environment: "test", RateLimitRPS: 1000, RateLimitBurst: 1000},
		JWT:    config.JWT{Secret: "test-secret", ExpiredIn: 5},
	}
}

// login stubs caller resolution and returns a bearer header value.
func (h harness) login(t *testing.T, caller *user.Caller) string {
	token, err := utils.GenerateJWTToken(caller.ID, *h.cfg)
	require.NoError(t, err)
	h.users.EXPECT().ResolveCaller(gomock.Any(), caller.ID).Return(caller, nil).AnyTimes()
	return "Bearer " + token
}

func (h harness) do(method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		appErrors.ErrUnauthorized:          http.StatusUnauthorized,
		appErrors.ErrForbidden:             http.StatusForbidden,
		appErrors.ErrNotParticipant:        http.StatusForbidden,
		appErrors.ErrProposalNotFound:      http.StatusNotFound,
		appErrors.ErrInvalidState:          http.StatusConflict,
		appErrors.ErrDuplicateConversation: http.StatusConflict,
		appErrors.ErrTextTooShort:          http.StatusBadRequest,
		appErrors.Internal("boom"):         http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusOf(err), err.Error())
	}
}

func TestServer_Auth(t *testing.T) {
	t.Run("sad path - missing token", func(t *testing.T) {
		h := newHarness(t, testConfig())
		rec := h.do(http.MethodGet, "/api/v1/conversations", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sad path - token signed with another secret", func(t *testing.T) {
		h := newHarness(t, testConfig())
		other := testConfig()
		other.JWT.Secret = "other"
		token, err := utils.GenerateJWTToken(uuid.New(), *other)
		require.NoError(t, err)

		rec := h.do(http.MethodGet, "/api/v1/conversations", "Bearer "+token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sad path - token for a deleted user", func(t *testing.T) {
		h := newHarness(t, testConfig())
		id := uuid.New()
		token, err := utils.GenerateJWTToken(id, *h.cfg)
		require.NoError(t, err)
		h.users.EXPECT().ResolveCaller(gomock.Any(), id).Return(nil, appErrors.ErrUnauthorized)

		rec := h.do(http.MethodGet, "/api/v1/conversations", "Bearer "+token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_Register(t *testing.T) {
	h := newHarness(t, testConfig())
	id := uuid.New()
	h.users.EXPECT().Register(gomock.Any(), user.RegisterCommand{Username: "sam", DisplayName: "Sam"}).
		Return(&user.UserDTO{ID: id, Username: "sam", DisplayName: "Sam"}, nil)

	rec := h.do(http.MethodPost, "/api/v1/users", "", gin.H{"username": "sam", "display_name": "Sam"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	got, err := utils.ParseJWTToken(body.Token, h.cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestServer_Proposals(t *testing.T) {
	caller := &user.Caller{ID: uuid.New(), Username: "pat"}

	t.Run("happy path - send proposal passes caller and terms", func(t *testing.T) {
		h := newHarness(t, testConfig())
		auth := h.login(t, caller)
		convID, proposalID := uuid.New(), uuid.New()

		h.proposals.EXPECT().SendProposal(gomock.Any(), caller, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *user.Caller, cmd proposal.SendProposalCommand) (uuid.UUID, error) {
				assert.Equal(t, convID, cmd.ConversationID)
				assert.EqualValues(t, 5000, cmd.Terms.Rate)
				assert.Equal(t, model.RateHourly, cmd.Terms.RateType)
				return proposalID, nil
			},
		)

		rec := h.do(http.MethodPost, "/api/v1/conversations/"+convID.String()+"/proposals", auth, gin.H{
			"rate": 5000, "rate_type": "hourly", "start_time": "2026-02-15T10:00:00Z",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), proposalID.String())
	})

	t.Run("sad path - accept by the sender is forbidden", func(t *testing.T) {
		h := newHarness(t, testConfig())
		auth := h.login(t, caller)
		id := uuid.New()
		h.proposals.EXPECT().AcceptProposal(gomock.Any(), caller, id).Return(uuid.Nil, appErrors.ErrForbidden)

		rec := h.do(http.MethodPost, "/api/v1/proposals/"+id.String()+"/accept", auth, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), string(appErrors.KindAuthorization))
	})

	t.Run("sad path - malformed id", func(t *testing.T) {
		h := newHarness(t, testConfig())
		auth := h.login(t, caller)
		rec := h.do(http.MethodPost, "/api/v1/proposals/not-a-uuid/decline", auth, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Reviews(t *testing.T) {
	caller := &user.Caller{ID: uuid.New()}
	h := newHarness(t, testConfig())
	auth := h.login(t, caller)
	jobID := uuid.New()

	h.reviews.EXPECT().SubmitReview(gomock.Any(), caller, review.SubmitReviewCommand{JobID: jobID, Rating: 4.5, Text: "great job overall"}).
		Return(uuid.Nil, appErrors.ErrRatingNotInteger)

	rec := h.do(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/reviews", auth, gin.H{"rating": 4.5, "text": "great job overall"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimitRPS = 0.001
	cfg.Server.RateLimitBurst = 2
	h := newHarness(t, cfg)
	id := uuid.New()
	h.users.EXPECT().GetUserProfile(gomock.Any(), id).Return(&user.UserProfileDTO{}, nil).Times(2)

	for i := 0; i < 2; i++ {
		rec := h.do(http.MethodGet, "/api/v1/users/"+id.String()+"/profile", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := h.do(http.MethodGet, "/api/v1/users/"+id.String()+"/profile", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestServer_Healthz(t *testing.T) {
	h := newHarness(t, testConfig())
	rec := h.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
