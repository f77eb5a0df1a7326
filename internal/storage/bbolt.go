package storage

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ConfigBucket holds the persisted driver configuration and bookkeeping.
var ConfigBucket = []byte("config")

// Config keys
var (
	ConfigVersion  = []byte("version")
	ConfigCreated  = []byte("created")
	ConfigModified = []byte("modified")
	ConfigDriver   = []byte("driver")
	ConfigKey      = []byte("key")
)

// Store provides BBolt-based persistence for the sealbox configuration
type Store struct {
	db *bolt.DB
}

// Open opens or creates a sealbox configuration store
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the bucket structure for a new store
func (s *Store) Initialize() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		config, err := tx.CreateBucketIfNotExists(ConfigBucket)
		if err != nil {
			return fmt.Errorf("failed to create config bucket: %w", err)
		}

		if err := config.Put(ConfigVersion, []byte("1")); err != nil {
			return err
		}

		now := time.Now()
		created, _ := now.MarshalBinary()
		if err := config.Put(ConfigCreated, created); err != nil {
			return err
		}
		return config.Put(ConfigModified, created)
	})
}

// IsInitialized checks if the store has been initialized
func (s *Store) IsInitialized() (bool, error) {
	var initialized bool
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config != nil && config.Get(ConfigVersion) != nil {
			initialized = true
		}
		return nil
	})
	return initialized, err
}

// SetDriver stores the configured driver name
func (s *Store) SetDriver(name string) error {
	return s.putConfig(ConfigDriver, []byte(name))
}

// GetDriver retrieves the configured driver name
func (s *Store) GetDriver() (string, error) {
	value, err := s.getConfig(ConfigDriver)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// SetKey stores the starter key material as raw bytes
func (s *Store) SetKey(key []byte) error {
	return s.putConfig(ConfigKey, key)
}

// GetKey retrieves the starter key material
func (s *Store) GetKey() ([]byte, error) {
	return s.getConfig(ConfigKey)
}

// Load returns the persisted configuration as a flat map containing only
// the keys that were actually stored. It satisfies the encryption
// package's ConfigSource.
func (s *Store) Load() (map[string]string, error) {
	cfg := make(map[string]string)
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("store not initialized")
		}
		if driver := config.Get(ConfigDriver); driver != nil {
			cfg["driver"] = string(driver)
		}
		if key := config.Get(ConfigKey); key != nil {
			cfg["key"] = string(key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateModified updates the last modified timestamp
func (s *Store) UpdateModified() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		now := time.Now()
		modified, _ := now.MarshalBinary()
		return config.Put(ConfigModified, modified)
	})
}

// GetModified retrieves the last modified timestamp
func (s *Store) GetModified() (time.Time, error) {
	var modified time.Time
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		data := config.Get(ConfigModified)
		if data == nil {
			return fmt.Errorf("modified time not found")
		}
		return modified.UnmarshalBinary(data)
	})
	return modified, err
}

func (s *Store) putConfig(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("store not initialized")
		}
		return config.Put(key, value)
	})
}

func (s *Store) getConfig(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("store not initialized")
		}
		data := config.Get(key)
		if data == nil {
			return fmt.Errorf("%s not found", key)
		}
		// Make a copy since the slice is only valid during the transaction
		value = append([]byte(nil), data...)
		return nil
	})
	return value, err
}
