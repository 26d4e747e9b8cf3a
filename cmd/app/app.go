package main

import (
	"os"

	"github.com/DRSN-tech/soares-modas/internal/app"
	config "github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

//	@title			Soares Modas API
//	@version		1.0
//	@description	Витрина Soares Modas: каталог, продажи, посещения, акции, настройки магазина и оформление заказа через WhatsApp.
//	@BasePath		/api

func main() {
	log := logger.NewZapLogger(logger.DefaultConfig())

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log = logger.NewZapLogger(cfg.Logger)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		_ = log.Sync()
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
