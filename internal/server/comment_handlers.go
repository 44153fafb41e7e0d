package server

import (
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateCommentRequest is the body of POST /content/{id}/comments.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CreateComment godoc
// @Summary Add a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param request body CreateCommentRequest true "Comment text"
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /content/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	contentID, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	comment, err := s.commentService.Create(c.Context(), service.CreateCommentInput{
		ContentID: contentID,
		AuthorID:  user.ID,
		Text:      req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments godoc
// @Summary List comments for a content item
// @Description Returns the most recent comments enriched with author details, newest first, sliced by limit and offset.
// @Tags comments
// @Produce json
// @Param id path int true "Content ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.CommentWithAuthor
// @Failure 404 {object} map[string]string
// @Router /content/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	contentID, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}
	limit, offset := parsePagination(c, 20)

	comments, err := s.commentService.List(c.Context(), contentID, limit, offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}

// GetCommentCount godoc
// @Summary Count comments for a content item
// @Tags comments
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]int
// @Router /content/{id}/comments/count [get]
func (s *Server) GetCommentCount(c *fiber.Ctx) error {
	contentID, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	count, err := s.commentService.Count(c.Context(), contentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Deletes a comment owned by the authenticated wallet.
// @Tags comments
// @Produce json
// @Param id path int true "Content ID"
// @Param commentId path int true "Comment ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /content/{id}/comments/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	if err := s.commentService.Delete(c.Context(), commentID, user.ID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
