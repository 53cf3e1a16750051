package controllers

import (
	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/services"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

type CredentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /register
func Register(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	user, err := services.NewUserService(config.DB).Register(input.Username, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "user registered successfully", user)
}

// POST /login
func Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondBindError(c, err)
		return
	}

	user, err := services.NewUserService(config.DB).Login(input.Username, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// GET /me
func Me(c *gin.Context) {
	user, err := services.NewUserService(config.DB).GetByID(c.GetUint("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, "OK", user)
}
