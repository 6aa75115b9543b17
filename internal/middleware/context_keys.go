package middleware

import "github.com/gin-gonic/gin"

// actorKey is the key used to store the acting user's name in the Gin
// context. Using a custom type prevents collisions.
const actorKey = contextKey("actor")

// actorHeader carries the caller identity used for audit fields.
const actorHeader = "X-Actor"

const defaultActor = "system"

// ActorMiddleware resolves the acting user from the request header so audit
// fields can record who created or changed a record.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(actorHeader)
		if actor == "" {
			actor = defaultActor
		}
		c.Set(string(actorKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user from the Gin context.
func GetActorFromContext(c *gin.Context) string {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		return defaultActor
	}
	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return defaultActor
	}
	return actor
}
