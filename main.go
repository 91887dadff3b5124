package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bankbuddy/api"
	"github.com/carson-networks/bankbuddy/internal/config"
	"github.com/carson-networks/bankbuddy/internal/logging"
	"github.com/carson-networks/bankbuddy/internal/operator"
	"github.com/carson-networks/bankbuddy/internal/service"
	"github.com/carson-networks/bankbuddy/internal/storage"
)

const operatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("bankbuddy starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, operatorWorkers)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
