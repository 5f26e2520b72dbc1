package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariaschitik/ru-pedantle/services"
)

// API holds dependencies for API handlers, primarily the game manager.
type API struct {
	games services.GameManager
}

// NewAPI creates a new API handler structure.
func NewAPI(games services.GameManager) *API {
	return &API{games: games}
}

// CreateGameRequest is the body of POST /games. Article defaults to 1.
type CreateGameRequest struct {
	Article *int `json:"article"`
}

// GuessRequest is the body of POST /games/:gameId/guesses.
type GuessRequest struct {
	Guess string `json:"guess"`
}

// SetupRoutes defines all the API routes for the game.
func SetupRoutes(router *gin.Engine, games services.GameManager) {
	apiHandler := NewAPI(games)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Corpus and activity
	router.GET("/articles", apiHandler.ListArticlesHandler)
	router.GET("/stats", apiHandler.StatsHandler)

	// Game routes
	gameRoutes := router.Group("/games")
	{
		gameRoutes.POST("", apiHandler.CreateGameHandler)                  // Start a round
		gameRoutes.GET("/:gameId", apiHandler.GetGameHandler)              // Current masked state
		gameRoutes.POST("/:gameId/guesses", apiHandler.SubmitGuessHandler) // Submit one guess
		gameRoutes.POST("/:gameId/replay", apiHandler.ReplayGameHandler)   // Restart the same article
		gameRoutes.DELETE("/:gameId", apiHandler.DeleteGameHandler)        // Abandon a game
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "pedantle",
		"timestamp": time.Now().Unix(),
	})
}

// ListArticlesHandler reports how many articles can be played.
func (api *API) ListArticlesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": api.games.ArticleCount()})
}

// StatsHandler returns activity counters of hosted games.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.games.Stats())
}

// CreateGameHandler starts a new round.
// Request Body (optional): CreateGameRequest
func (api *API) CreateGameHandler(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateCreateGameRequest(&req, api.games.ArticleCount()); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	number := 1
	if req.Article != nil {
		number = *req.Article
	}

	game, err := api.games.CreateGame(number)
	if err != nil {
		SendGameError(c, "", "game creation", err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// GetGameHandler returns the masked state of a game.
func (api *API) GetGameHandler(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	game, err := api.games.GetGame(gameID)
	if err != nil {
		SendGameError(c, gameID, "game lookup", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// SubmitGuessHandler applies one guess.
// Request Body: GuessRequest
func (api *API) SubmitGuessHandler(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateGuessRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	outcome, err := api.games.SubmitGuess(gameID, req.Guess)
	if err != nil {
		SendGameError(c, gameID, "guess", err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// ReplayGameHandler restarts a game with nothing revealed.
func (api *API) ReplayGameHandler(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	game, err := api.games.ReplayGame(gameID)
	if err != nil {
		SendGameError(c, gameID, "replay", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGameHandler abandons a game.
func (api *API) DeleteGameHandler(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	if err := api.games.DeleteGame(gameID); err != nil {
		SendGameError(c, gameID, "game deletion", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func gameIDParam(c *gin.Context) (string, bool) {
	gameID := c.Param("gameId")
	if result := ValidateGameID(gameID); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return "", false
	}
	return gameID, true
}
