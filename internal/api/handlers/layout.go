package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sefinote/sefinote/internal/layout"
)

// GetLayout godoc
// @Summary Get the fixed diagram layout
// @Description Returns the ten slot positions, the connection pairs and
// the default placeholder titles the editor renders with.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /layout [get]
func GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"slots":          layout.Slots,
		"connections":    layout.Connections,
		"default_titles": layout.DefaultTitles,
	})
}
