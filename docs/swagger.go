package docs

import "github.com/swaggo/swag"

// @title           Task Tracker API
// @version         1.0
// @description     API for managing employees, teams and their tasks
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Auth
// @tag.description Registration and login

// @tag.name Tasks
// @tag.description Task management operations

// @tag.name Teams
// @tag.description Team and membership operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swaggerInfo
}
