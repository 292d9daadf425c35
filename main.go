package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nbui/fitstore-api/auth"
	"github.com/nbui/fitstore-api/config"
	"github.com/nbui/fitstore-api/controllers"
	"github.com/nbui/fitstore-api/initializers"
	"github.com/nbui/fitstore-api/mailer"
	"github.com/nbui/fitstore-api/middlewares"
	"github.com/nbui/fitstore-api/payment"
	"github.com/nbui/fitstore-api/routes"
	"github.com/nbui/fitstore-api/services"
	"github.com/nbui/fitstore-api/stores"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := initializers.ConnectToDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	userStore := stores.NewUserStore(db)
	itemStore := stores.NewItemStore(db)
	cartStore := stores.NewCartStore(db)
	orderStore := stores.NewOrderStore(db)

	tokenCodec := auth.NewTokenCodec(cfg.AppSecret)
	mail := mailer.New(mailer.Config{
		Address:  cfg.SMTPAddress,
		Host:     cfg.SMTPHost,
		From:     cfg.FromEmail,
		Password: cfg.FromEmailPassword,
	})
	payments := payment.NewStripeClient(cfg.StripeSecretKey)

	accounts := services.NewAccountService(userStore, mail, tokenCodec, cfg.FrontendURL)
	items := services.NewItemService(itemStore)
	cart := services.NewCartService(cartStore, itemStore)
	orders := services.NewOrderService(cartStore, orderStore, payments)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.Identify(tokenCodec, userStore))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(accounts))
	routes.UserRoutes(server, controllers.NewUserController(accounts))
	routes.ItemRoutes(server, controllers.NewItemController(items))
	routes.CartRoutes(server, controllers.NewCartController(cart))
	routes.OrderRoutes(server, controllers.NewOrderController(orders))

	server.Run(":" + cfg.Port)
}
