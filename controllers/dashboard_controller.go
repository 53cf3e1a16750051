package controllers

import (
	"time"

	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/services"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

// GET /dashboard/today
func DashboardToday(c *gin.Context) {
	summary, err := services.NewDashboardService(config.DB).Daily(c.GetUint("userID"), time.Now())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "daily dashboard retrieved successfully", summary)
}

// GET /dashboard/range?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func DashboardRange(c *gin.Context) {
	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	summaries, err := services.NewDashboardService(config.DB).Range(c.GetUint("userID"), startDate, endDate)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "range dashboard retrieved successfully", gin.H{"items": summaries})
}
