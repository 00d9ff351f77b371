package controllers

import (
	"net/http"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/services"
	"github.com/blogem/radiocalco/userctx"
)

var ratingMessages = errorMessages{
	MissingFields: "Title, artist, and rating are required",
}

// RatingController handles song voting requests
type RatingController struct {
	services *services.Services
	resp     *responder
}

// NewRatingController creates a new rating controller
func NewRatingController(services *services.Services, resp *responder) *RatingController {
	return &RatingController{
		services: services,
		resp:     resp,
	}
}

// Show handles GET /api/ratings/{title}/{artist}
func (c *RatingController) Show(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")
	artist := pathParam(r, "artist")
	voter := userctx.GetClientAddress(r.Context())

	summary, err := c.services.Ratings.GetRatings(r.Context(), title, artist, voter)
	if err != nil {
		msgs := ratingMessages
		msgs.Failure = "Failed to fetch ratings"
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.RatingSummaryResponse{
		Status:     models.StatusSuccess,
		Ratings:    summary.Ratings,
		UserRating: summary.UserRating,
	})
}

// Submit handles POST /api/ratings
func (c *RatingController) Submit(w http.ResponseWriter, r *http.Request) {
	var form models.RatingForm
	if err := decodeForm(w, r, &form); err != nil {
		c.resp.writeError(w, r, http.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
		return
	}

	voter := userctx.GetClientAddress(r.Context())

	outcome, err := c.services.Ratings.SubmitRating(r.Context(), &form, voter)
	if err != nil {
		msgs := ratingMessages
		msgs.Failure = "Failed to submit rating"
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	if outcome == models.RatingUpdated {
		c.resp.writeJSON(w, http.StatusOK, models.MessageResponse{
			Status:  models.StatusSuccess,
			Message: "Rating updated successfully",
		})
		return
	}

	c.resp.writeJSON(w, http.StatusCreated, models.MessageResponse{
		Status:  models.StatusSuccess,
		Message: "Rating submitted successfully",
	})
}
