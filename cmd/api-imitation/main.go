package main

import (
	"log"

	"github.com/neelammkw/elearning-client/config"
	"github.com/neelammkw/elearning-client/imitation"
	"github.com/neelammkw/elearning-client/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := utils.InitLogger()

	app := imitation.New(cfg, logger)

	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
