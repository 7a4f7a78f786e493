package main

import (
	"context"
	"dressa_storefront/app"
	"dressa_storefront/config"
	"dressa_storefront/routes"
	"log"
)

func main() {
	config.LoadEnv()
	application := app.MustNew()
	defer application.Close()

	r := application.Router
	routes.RegisterRoutes(r, application)
	app.Bootstrap(context.Background(), application)

	port := application.Config.Port
	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
