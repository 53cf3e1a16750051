package controllers

import (
	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/services"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

// POST /meals/create
func CreateMeal(c *gin.Context) {
	var input services.MealCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	meal, err := services.NewMealService(config.DB).Create(c.GetUint("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "meal logged successfully", meal)
}

// GET /meals/range?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func ListMealsRange(c *gin.Context) {
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

	meals, err := services.NewMealService(config.DB).ListRange(c.GetUint("userID"), startDate, endDate)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "meals retrieved successfully", gin.H{"items": meals})
}

// DELETE /meals/:id
func DeleteMeal(c *gin.Context) {
	mealID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	meal, err := services.NewMealService(config.DB).Delete(mealID, c.GetUint("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "meal deleted successfully", meal)
}
