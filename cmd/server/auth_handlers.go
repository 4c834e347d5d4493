package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jortega-dev/threads-shop/internal/account"
	"github.com/jortega-dev/threads-shop/internal/httpx"
)

type registerForm struct {
	Username  string `form:"username"  validate:"required,min=3,max=150"`
	Email     string `form:"email"     validate:"omitempty,email"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required"`
}

func registerPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{})
	}
}

func registerHandler(repo account.Repository, secret string) gin.HandlerFunc {
	validate := validator.New()
	return func(c *gin.Context) {
		var form registerForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "Please correct the errors below."})
			return
		}
		if err := validate.Struct(form); err != nil {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "Please correct the errors below."})
			return
		}
		if form.Password1 != form.Password2 {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "Passwords do not match."})
			return
		}

		hash, err := account.HashPassword(form.Password1)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Registration failed, try again."})
			return
		}
		u := &account.User{
			ID:           uuid.NewString(),
			Username:     form.Username,
			Email:        form.Email,
			PasswordHash: hash,
		}
		if err := repo.Create(c.Request.Context(), u); err != nil {
			if errors.Is(err, account.ErrAlreadyExist) {
				c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "That username is taken."})
				return
			}
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "Registration failed, try again."})
			return
		}

		// registration logs the user in right away
		startSession(c, secret, u.ID)
		setFlash(c, "Registration successful! Welcome to Threads Shop!")
		c.Redirect(http.StatusFound, "/")
	}
}

func loginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

func loginHandler(repo account.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		u, err := repo.GetByUsername(c.Request.Context(), username)
		if err != nil || !account.CheckPassword(u.PasswordHash, password) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid username or password."})
			return
		}

		startSession(c, secret, u.ID)
		setFlash(c, "Welcome back, "+u.Username+"!")
		c.Redirect(http.StatusFound, "/")
	}
}

func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(httpx.SessionCookie, "", -1, "/", "", false, true)
		setFlash(c, "Logged out successfully!")
		c.Redirect(http.StatusFound, "/")
	}
}

func startSession(c *gin.Context, secret, userID string) {
	token, err := account.NewSessionToken(secret, userID)
	if err != nil {
		log.Printf("[auth] sign session token: %v", err)
		return
	}
	c.SetCookie(httpx.SessionCookie, token, int(account.SessionTTL.Seconds()), "/", "", false, true)
}
