package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpoints []byte

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// GetEndpoints describes every route the API serves.
func (h *APIHandler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpoints)})
}

func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "server up and running..."})
}
