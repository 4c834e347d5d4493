package main

import "github.com/gin-gonic/gin"

const flashCookie = "flash"

// setFlash stores a one-shot page message for the next rendered page.
// The auth flows redirect to "/", so indexPage is the consumer.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// takeFlash returns the pending message, if any, and clears it.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
