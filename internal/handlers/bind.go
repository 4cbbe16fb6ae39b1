package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
)

// bindJSON decodes the request body into dst. A body that is not valid JSON
// or carries a field of the wrong type is a bad request; anything else the
// binder rejects means a required field is absent.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	if errors.As(err, &typeErr) || errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperr.ErrBadRequest
	}
	return apperr.ErrMissingInput
}

// paramID parses a path id. Ids are INT columns, so anything outside the
// int32 range can never match and is rejected before reaching the driver.
func paramID(c *gin.Context, name string) (int, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.ErrBadRequest
	}
	return int(id), nil
}
