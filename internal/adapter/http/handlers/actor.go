package handlers

import (
	"strings"

	"mecanica_os/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Actor headers are stamped by the API gateway after authentication; this
// service only maps them onto the domain's actor variant. An absent or
// unknown role degrades to an anonymous customer, which can do nothing that
// requires capability.
const (
	headerActorRole  = "X-Actor-Role"
	headerCustomerID = "X-Customer-Id"
)

func actorFromRequest(c *gin.Context) entities.Actor {
	role := strings.ToLower(strings.TrimSpace(c.GetHeader(headerActorRole)))
	switch role {
	case "admin":
		return entities.AdminActor()
	case "system":
		return entities.SystemActor()
	default:
		return entities.CustomerActor(strings.TrimSpace(c.GetHeader(headerCustomerID)))
	}
}
