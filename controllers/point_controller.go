package controllers

import (
	"net/http"

	"github.com/HifricAldar/cloud-computing/services"
	"github.com/gin-gonic/gin"
)

type PointController struct {
	points *services.PointService
}

func NewPointController(points *services.PointService) *PointController {
	return &PointController{points: points}
}

func (ctl *PointController) History(c *gin.Context) {
	entries, err := ctl.points.History(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (ctl *PointController) Gifts(c *gin.Context) {
	gifts, err := ctl.points.Gifts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gifts})
}
