package main

import (
	_ "monauxiliaire/docs"
	"monauxiliaire/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mon Auxiliaire API
// @version         1.0
// @description     Lead-capture backend for the Mon Auxiliaire moving company: quote requests, contact messages and the chat assistant relay.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    https://monauxiliaire.ma
// @contact.email  devis@d3drone.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
