package controllers

import (
	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/services"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

func foodService() *services.FoodService {
	return services.NewFoodService(config.DB, services.NewOpenFoodFactsService())
}

// POST /foods/create
func CreateFood(c *gin.Context) {
	var input services.FoodCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	food, err := foodService().Create(c.GetUint("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "food created successfully", food)
}

// GET /foods/all
func ListFoods(c *gin.Context) {
	foods, err := foodService().List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "foods retrieved successfully", foods)
}

// GET /foods/search?name=
func SearchFoods(c *gin.Context) {
	foods, err := foodService().SearchByName(c.Query("name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "foods retrieved successfully", foods)
}

// GET /foods/:id
func GetFood(c *gin.Context) {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	food, err := foodService().GetByID(foodID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "food retrieved successfully", food)
}

// GET /foods/barcode/:barcode resolves against the local catalog first
// and falls back to the external product database on a miss.
func ResolveFoodByBarcode(c *gin.Context) {
	food, err := foodService().ResolveBarcode(c.Param("barcode"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "food resolved successfully", food)
}

// PUT /foods/:id
func UpdateFood(c *gin.Context) {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var input services.FoodUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	food, err := foodService().Update(foodID, c.GetUint("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "food updated successfully", food)
}

// DELETE /foods/:id
func DeleteFood(c *gin.Context) {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result, err := foodService().Delete(foodID, c.GetUint("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "food deleted successfully", result)
}
