package persistence

import (
	"os"

	json "github.com/goccy/go-json"

	"qrd/internal/models"
	"qrd/internal/persistence/interfaces"
	"qrd/internal/providers"
	"qrd/internal/services"
)

// FileManager persists the full scan history as zstd-compressed JSON.
// Saves go through a tmp file with fsync and rename so a crash mid-write
// never corrupts the previous snapshot.
type FileManager struct {
	service    services.HistoryServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.HistoryServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	storage := f.service.GetSnapshot()

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Try current envelope format
	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err == nil && storage.Version > 0 {
		if storage.Events == nil {
			storage.Events = make([]models.ScanEvent, 0)
		}
		f.service.PutEvents(storage.Events)
		return nil
	}

	// Try legacy format (bare event array, no envelope)
	f.logger.Warnf(providers.TypeApp, "Inconsistent DB found, try to migrate from old data format")
	var events []models.ScanEvent
	if err := json.Unmarshal(decompressedData, &events); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	f.logger.Warnf(providers.TypeApp, "Migration from legacy format successful")
	f.service.PutEvents(events)

	return nil
}
