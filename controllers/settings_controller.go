package controllers

import (
	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/services"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

// POST /settings/create
func CreateSettings(c *gin.Context) {
	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	settings, err := services.NewSettingsService(config.DB).Create(c.GetUint("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "settings created successfully", settings)
}

// GET /settings/me
func GetSettings(c *gin.Context) {
	settings, err := services.NewSettingsService(config.DB).Get(c.GetUint("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "settings retrieved successfully", settings)
}

// PUT /settings/update
func UpdateSettings(c *gin.Context) {
	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	settings, err := services.NewSettingsService(config.DB).Update(c.GetUint("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "settings updated successfully", settings)
}
