package public

import (
	"github.com/blogicum-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetLocations 已发布地点列表
func (h *Handler) GetLocations(c *gin.Context) {
	locations, err := h.LocationService.ListPublished()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load locations", err)
		return
	}
	response.Success(c, locations)
}
