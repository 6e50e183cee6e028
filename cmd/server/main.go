package main

import (
	"flag"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/chessbored/backend/internal/controller"
	"github.com/chessbored/backend/internal/logging"
	"github.com/chessbored/backend/internal/model"
	"github.com/chessbored/backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	debug := flag.Bool("debug", false, "Show extra debugging output")
	addr := flag.String("addr", ":3000", "listen address")
	origins := flag.String("origin", "http://localhost:5173", "comma separated list of allowed client origins")
	start := flag.Duration("clock", model.DefaultTimeControl.Start, "starting time on each player's clock")
	increment := flag.Duration("increment", 0, "time added to a player's clock after each of their moves")
	flag.Parse()

	logging.Init(os.Stderr, *debug)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !*debug,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(func(c *fiber.Ctx) error {
		log.WithFields(log.Fields{"method": c.Method(), "path": c.Path()}).Debug("incoming request")
		return c.Next()
	})

	gameManager := service.NewGameManager(model.TimeControl{Start: *start, Increment: *increment})
	gameService := service.NewGameService(gameManager)
	controller.SetupRoutes(app, gameService, strings.Split(*origins, ","))

	log.WithField("addr", *addr).Info("listening")
	if err := app.Listen(*addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
