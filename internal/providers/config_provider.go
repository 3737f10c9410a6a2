package providers

import (
	"fmt"
	"path/filepath"
	"qrd/internal/structures"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "QRD_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "QRD_SAVE_INTERVAL")
	viper.BindEnv("history.cacheTTL", "QRD_CACHE_TTL")
	viper.BindEnv("cache.enabled", "QRD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "QRD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "QRScanHistoryDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	if conf.History.DefaultFormat == "" {
		conf.History.DefaultFormat = "QR_CODE"
	}

	return &conf, nil
}
