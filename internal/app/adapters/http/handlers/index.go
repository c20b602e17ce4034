package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func (h *Handlers) IndexHandler(c *gin.Context) {
	html := `<!DOCTYPE html>
		<html lang="en">
		<head>
		<meta charset="UTF-8">
		<title>viewermon</title>
		</head>
		<body>
		<h1>viewermon</h1>
		<ul>
		  <li><a href="/status">/status</a> — process and last tick info</li>
		  <li><a href="/metrics">/metrics</a> — prometheus metrics</li>
		  <li>/live — websocket feed of tick rows</li>
		</ul>
		</body>
		</html>`

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
