package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AHMADJAN-New/nazim-web-sub011/config"
	"github.com/AHMADJAN-New/nazim-web-sub011/database"
	"github.com/AHMADJAN-New/nazim-web-sub011/routes"
)

func main() {
	cfg := config.Load()

	// Early fail if the DB is not up yet.
	database.Connect(cfg)
	database.ConnectCache(cfg.RedisAddr)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
