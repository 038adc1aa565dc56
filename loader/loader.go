package loader

import (
	"fmt"
	"os"

	"github.com/bluele/gcache"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const loaderType = "trip-loader"

// TripLoader loads trip tables from CSV files. Loaded tables are immutable, so they are
// cached by resource and shared between callers.
type TripLoader struct {
	columns config.Columns
	cache   gcache.Cache
}

func NewTripLoader(loaderConfig config.LoaderConfig) *TripLoader {
	tripLoader := &TripLoader{
		columns: loaderConfig.Columns,
	}

	cacheSize := loaderConfig.CacheSize
	if cacheSize <= 0 {
		cacheSize = 1
	}

	cacheBuilder := gcache.New(cacheSize).
		LRU().
		LoaderFunc(func(key interface{}) (interface{}, error) {
			return tripLoader.loadFromFile(key.(string))
		})
	if loaderConfig.CacheTTL > 0 {
		cacheBuilder = cacheBuilder.Expiration(loaderConfig.CacheTTL)
	}
	tripLoader.cache = cacheBuilder.Build()

	return tripLoader
}

func (tl *TripLoader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// Load returns the trips table stored in resource. Fails with ErrResourceUnavailable if the
// file cannot be read and with ErrMalformedRecord if its header lacks a required column.
func (tl *TripLoader) Load(resource string) (trip.Table, error) {
	value, err := tl.cache.Get(resource)
	if err != nil {
		return nil, err
	}
	return value.(trip.Table), nil
}

func (tl *TripLoader) loadFromFile(resource string) (trip.Table, error) {
	dataFile, err := os.Open(resource)
	if err != nil {
		log.Error(tl.getLogMessage("loadFromFile", fmt.Sprintf("error opening %s", resource), err))
		return nil, fmt.Errorf("error opening %s: %s: %w", resource, err, dataErrors.ErrResourceUnavailable)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(tl.getLogMessage("loadFromFile", fmt.Sprintf("error closing %s", resource), err))
		}
	}(dataFile)

	table, err := Parse(resource, dataFile, tl.columns)
	if err != nil {
		log.Error(tl.getLogMessage("loadFromFile", fmt.Sprintf("error parsing %s", resource), err))
		return nil, err
	}

	log.Info(tl.getLogMessage("loadFromFile", fmt.Sprintf("%s loaded: %v trips, %v rows skipped", resource, table.Len(), table.Skipped()), nil))
	return table, nil
}
