package utils

import "github.com/gofiber/fiber/v2"

func alertHeader(appName string) string  { return "X-" + appName + "-alert" }
func errorHeader(appName string) string  { return "X-" + appName + "-error" }
func paramsHeader(appName string) string { return "X-" + appName + "-params" }

// Alert sets the alert and params headers read by the front-end.
func Alert(c *fiber.Ctx, appName, message, param string) {
	c.Set(alertHeader(appName), message)
	c.Set(paramsHeader(appName), param)
}

// EntityCreationAlert signals that entityName with id param was created.
func EntityCreationAlert(c *fiber.Ctx, appName, entityName, param string) {
	Alert(c, appName, appName+"."+entityName+".created", param)
}

// EntityUpdateAlert signals that entityName with id param was updated.
func EntityUpdateAlert(c *fiber.Ctx, appName, entityName, param string) {
	Alert(c, appName, appName+"."+entityName+".updated", param)
}

// EntityDeletionAlert signals that entityName with id param was deleted.
func EntityDeletionAlert(c *fiber.Ctx, appName, entityName, param string) {
	Alert(c, appName, appName+"."+entityName+".deleted", param)
}

// FailureAlert signals a rejected request on entityName.
func FailureAlert(c *fiber.Ctx, appName, entityName, errorKey string) {
	c.Set(errorHeader(appName), "error."+errorKey)
	c.Set(paramsHeader(appName), entityName)
}
