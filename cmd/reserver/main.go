package main

import (
	"log"

	_ "github.com/lib/pq"
	"github.com/wilbyang/reserver/internal/app"
	"github.com/wilbyang/reserver/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
