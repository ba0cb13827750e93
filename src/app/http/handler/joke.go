package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokester/src/app/http/dto"
	"jokester/src/app/http/response"
	"jokester/src/app/middleware"
	"jokester/src/app/view"
	"jokester/src/core/domain"
	"jokester/src/core/usecase"
)

// JokeHandler serves the new-joke page and the joke detail page.
type JokeHandler struct {
	jokes *usecase.JokeService
}

func NewJokeHandler(jokes *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokes: jokes}
}

// New renders the empty form for signed-in users.
// GET /jokes/new
func (h *JokeHandler) New(c *gin.Context) {
	if _, ok := middleware.OptionalUserID(c); !ok {
		_ = c.Error(domain.NewUnauthorizedError("Unauthorized"))
		return
	}

	if response.WantsJSON(c) {
		response.OK(c, gin.H{})
		return
	}
	c.HTML(http.StatusOK, view.PageNewJoke, view.NewJokeForm(dto.JokeActionData{}))
}

// Create validates and stores a submission, then redirects to the new joke.
// POST /jokes/new
func (h *JokeHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	name, hasName := postFormText(c, "name")
	content, hasContent := postFormText(c, "content")
	if !hasName || !hasContent {
		h.rejectSubmission(c, dto.JokeActionData{FormError: dto.MsgJokeFormMalformed})
		return
	}

	joke, err := h.jokes.Create(c.Request.Context(), usecase.CreateJokeInput{
		Name:       name,
		Content:    content,
		JokesterID: userID,
	})
	if err != nil {
		if fieldErrs, ok := domain.AsFieldErrors(err); ok {
			h.rejectSubmission(c, dto.NewJokeValidationData(fieldErrs, name, content))
			return
		}
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/jokes/"+joke.ID.String())
}

func (h *JokeHandler) rejectSubmission(c *gin.Context, data dto.JokeActionData) {
	if response.WantsJSON(c) {
		c.JSON(http.StatusBadRequest, data)
		return
	}
	c.HTML(http.StatusBadRequest, view.PageNewJoke, view.NewJokeForm(data))
}

// Preview renders the page fragment for a submission that is still in flight.
// Nothing is stored.
// POST /jokes/new/preview
func (h *JokeHandler) Preview(c *gin.Context) {
	if _, ok := middleware.RequireUserID(c); !ok {
		return
	}

	name, hasName := postFormText(c, "name")
	content, hasContent := postFormText(c, "content")
	c.HTML(http.StatusOK, view.FragmentNewJoke, view.NewJokeSubmission(name, content, hasName && hasContent))
}

// Show renders a stored joke.
// GET /jokes/:id
func (h *JokeHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(domain.NewNotFoundError("joke"))
		return
	}

	joke, err := h.jokes.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if response.WantsJSON(c) {
		response.OK(c, dto.NewJokeResponse(joke))
		return
	}
	viewerID, _ := middleware.OptionalUserID(c)
	c.HTML(http.StatusOK, view.PageJoke, view.NewJokeDisplay(joke, viewerID))
}
