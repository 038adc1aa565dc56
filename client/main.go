package main

import (
	"os"

	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"

	"bikeshare/catalog"
	"bikeshare/config"
	"bikeshare/loader"
	"bikeshare/pager"
	"bikeshare/reports"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	logrus.SetFormatter(customFormatter)
	logrus.SetLevel(level)
	return nil
}

func main() {
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := InitLogger(appConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	cityCatalog, err := catalog.New(appConfig.DataDir, appConfig.Datasets)
	if err != nil {
		log.Fatalf("%s", err)
	}

	publisher, err := reports.NewPublisher(appConfig.Publisher)
	if err != nil {
		log.Errorf("[component: main][status: ERROR] reports will not be published: %s", err.Error())
		publisher = reports.NopPublisher{}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorf("[component: main][status: ERROR] error closing publisher: %s", err.Error())
		}
	}()

	shell := NewShell(
		cityCatalog,
		loader.NewTripLoader(appConfig.Loader),
		publisher,
		pager.New(appConfig.PageSize),
		os.Stdin,
		os.Stdout,
	)

	done := make(chan error, 1)
	go func() {
		done <- shell.Run()
	}()

	sigs := utils.GetSignalChannel()
	select {
	case <-sigs:
		log.Info("[component: main][status: OK] signal received, exiting")
	case err := <-done:
		if err != nil {
			log.Errorf("[component: main][status: ERROR] %s", err.Error())
		}
	}
	log.Debug("Finish main.go")
}
