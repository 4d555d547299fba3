package main

import (
	_ "facturacion_movil/docs"
	"facturacion_movil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           POS Facturación API
// @version         1.0
// @description     Point-of-sale backend for Chilean electronic tax documents (facturas + boletas) with a two-tier response cache.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
