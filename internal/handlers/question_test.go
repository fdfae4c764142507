package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/qa-board-api/internal/constants"
	"github.com/yukikurage/qa-board-api/internal/dto"
	"github.com/yukikurage/qa-board-api/internal/models"
	"github.com/yukikurage/qa-board-api/internal/repository"
	"github.com/yukikurage/qa-board-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// QuestionHandlerTestSuite defines the test suite for the question and answer
// handlers
type QuestionHandlerTestSuite struct {
	suite.Suite
	db              *gorm.DB
	questionHandler *QuestionHandler
	answerHandler   *AnswerHandler
	questionService *services.QuestionService
}

// SetupTest runs before each test
func (suite *QuestionHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.Answer{},
		&models.TagAssignment{},
	)
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	questionRepo := repository.NewQuestionRepository(suite.db)
	answerRepo := repository.NewAnswerRepository(suite.db)
	tagRepo := repository.NewTagRepository(suite.db)

	suite.questionService = services.NewQuestionService(questionRepo, answerRepo)
	tagService := services.NewTagService(tagRepo)
	voteService := services.NewVoteService(questionRepo, answerRepo)

	suite.questionHandler = NewQuestionHandler(suite.questionService, tagService, voteService)
	suite.answerHandler = NewAnswerHandler(suite.questionService, voteService)

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *QuestionHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data

func (suite *QuestionHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *QuestionHandlerTestSuite) createTestTag(name string) *models.Tag {
	tag := &models.Tag{
		Name:        name,
		Description: name + " questions",
	}
	suite.db.Create(tag)
	return tag
}

// createAuthContext creates a context carrying the authenticated user id
func (suite *QuestionHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != 0 {
		c.Set(constants.ContextKeyUserID, userID)
	}

	return c, w
}

func (suite *QuestionHandlerTestSuite) askQuestion(authorID uint64, title string, tagIDs []uint64) uint64 {
	id, err := suite.questionService.Ask(services.AskInput{
		AuthorID: authorID,
		Title:    title,
		Body:     "Body of " + title,
		TagIDs:   tagIDs,
	})
	suite.Require().NoError(err)
	return id
}

// Tests

func (suite *QuestionHandlerTestSuite) TestAsk() {
	user := suite.createTestUser("alice")
	tagGo := suite.createTestTag("go")
	tagDB := suite.createTestTag("databases")

	body, _ := json.Marshal(map[string]any{
		"title":   "How do transactions work?",
		"body":    "Long form question body",
		"tag_ids": []uint64{tagGo.ID, tagDB.ID},
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/questions", body, user.ID)
	suite.questionHandler.Ask(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response struct {
		ID uint64 `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.NotZero(response.ID)

	// The returned id is immediately usable as a thread target
	c, w = suite.createAuthContext(http.MethodGet, "/api/questions/"+strconv.FormatUint(response.ID, 10), nil, 0)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(response.ID, 10)}}
	suite.questionHandler.GetThread(c)

	suite.Equal(http.StatusOK, w.Code)

	var thread dto.ThreadDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &thread))
	suite.Equal("How do transactions work?", thread.Question.Title)
	suite.Len(thread.Question.Tags, 2)
	suite.False(thread.Question.Answered)
	suite.Equal(0, thread.NumAnswers)
}

func (suite *QuestionHandlerTestSuite) TestAsk_UnknownTag() {
	user := suite.createTestUser("alice")

	body, _ := json.Marshal(map[string]any{
		"title":   "Doomed question",
		"body":    "Body",
		"tag_ids": []uint64{9999},
	})

	c, w := suite.createAuthContext(http.MethodPost, "/api/questions", body, user.ID)
	suite.questionHandler.Ask(c)

	suite.Equal(http.StatusBadRequest, w.Code)

	// The rolled-back question must not show up in the listing
	c, w = suite.createAuthContext(http.MethodGet, "/api/questions", nil, 0)
	suite.questionHandler.ListQuestions(c)

	suite.Equal(http.StatusOK, w.Code)

	var list dto.QuestionListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Empty(list.Questions)
}

func (suite *QuestionHandlerTestSuite) TestListQuestions_FilterByTag() {
	user := suite.createTestUser("alice")
	tagGo := suite.createTestTag("go")
	tagWeb := suite.createTestTag("web")

	goQuestion := suite.askQuestion(user.ID, "go question", []uint64{tagGo.ID})
	suite.askQuestion(user.ID, "web question", []uint64{tagWeb.ID})

	c, w := suite.createAuthContext(http.MethodGet, "/api/questions?tags=go", nil, 0)
	suite.questionHandler.ListQuestions(c)

	suite.Equal(http.StatusOK, w.Code)

	var list dto.QuestionListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Require().Len(list.Questions, 1)
	suite.Equal(goQuestion, list.Questions[0].ID)
}

func (suite *QuestionHandlerTestSuite) TestListQuestions_UnknownTag() {
	c, w := suite.createAuthContext(http.MethodGet, "/api/questions?tags=missing", nil, 0)
	suite.questionHandler.ListQuestions(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *QuestionHandlerTestSuite) TestAnswerAndVote() {
	author := suite.createTestUser("alice")
	replier := suite.createTestUser("bob")
	questionID := suite.askQuestion(author.ID, "T", nil)
	questionParam := gin.Params{{Key: "id", Value: strconv.FormatUint(questionID, 10)}}

	body, _ := json.Marshal(map[string]string{"body": "An answer"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/questions/1/answers", body, replier.ID)
	c.Params = questionParam
	suite.answerHandler.Answer(c)

	suite.Equal(http.StatusCreated, w.Code)

	// Upvote the question
	body, _ = json.Marshal(map[string]string{"direction": "up"})
	c, w = suite.createAuthContext(http.MethodPost, "/api/questions/1/vote", body, replier.ID)
	c.Params = questionParam
	suite.questionHandler.VoteQuestion(c)

	suite.Equal(http.StatusOK, w.Code)

	c, w = suite.createAuthContext(http.MethodGet, "/api/questions/1", nil, 0)
	c.Params = questionParam
	suite.questionHandler.GetThread(c)

	suite.Equal(http.StatusOK, w.Code)

	var thread dto.ThreadDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &thread))
	suite.Equal(1, thread.Question.Score)
	suite.Equal(1, thread.NumAnswers)
	suite.Require().Len(thread.Answers, 1)
	suite.Equal("An answer", thread.Answers[0].Body)
	suite.Equal("bob", thread.Answers[0].Author.Username)
}

func (suite *QuestionHandlerTestSuite) TestAnswer_UnknownQuestion() {
	replier := suite.createTestUser("bob")

	body, _ := json.Marshal(map[string]string{"body": "An answer"})
	c, w := suite.createAuthContext(http.MethodPost, "/api/questions/9999/answers", body, replier.ID)
	c.Params = gin.Params{{Key: "id", Value: "9999"}}
	suite.answerHandler.Answer(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *QuestionHandlerTestSuite) TestAcceptAnswer() {
	author := suite.createTestUser("alice")
	replier := suite.createTestUser("bob")
	questionID := suite.askQuestion(author.ID, "T", nil)

	suite.Require().NoError(suite.questionService.Answer(services.AnswerInput{
		AuthorID:   replier.ID,
		QuestionID: questionID,
		Body:       "An answer",
	}))

	answers, err := suite.questionService.AnswersFor(questionID)
	suite.Require().NoError(err)
	answerParam := gin.Params{{Key: "id", Value: strconv.FormatUint(answers[0].ID, 10)}}

	// Only the question author may accept
	c, w := suite.createAuthContext(http.MethodPost, "/api/answers/1/accept", nil, replier.ID)
	c.Params = answerParam
	suite.answerHandler.AcceptAnswer(c)

	suite.Equal(http.StatusForbidden, w.Code)

	c, w = suite.createAuthContext(http.MethodPost, "/api/answers/1/accept", nil, author.ID)
	c.Params = answerParam
	suite.answerHandler.AcceptAnswer(c)

	suite.Equal(http.StatusOK, w.Code)

	c, w = suite.createAuthContext(http.MethodGet, "/api/questions/1", nil, 0)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(questionID, 10)}}
	suite.questionHandler.GetThread(c)

	var thread dto.ThreadDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &thread))
	suite.True(thread.Question.Answered)
	suite.Require().Len(thread.Answers, 1)
	suite.True(thread.Answers[0].Accepted)
}

// TestQuestionHandlerTestSuite runs the test suite
func TestQuestionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuestionHandlerTestSuite))
}
