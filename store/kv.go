package store

import (
	"encoding/json"
	"sync"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

// KV is a namespaced key-value storage with JSON (de)serialization.
// Corrupted values and write failures are logged and swallowed: Get
// reports a miss, Set becomes a no-op. Writes replace the whole value
// (last-write-wins, no versioning).
type KV interface {
	// Get unmarshals the value under key into out and reports whether a
	// well-formed value was found.
	Get(key string, out interface{}) bool
	Set(key string, value interface{})
	Delete(key string)
	Has(key string) bool
}

// KVRecord is a single stored blob. Every entity list occupies one row.
type KVRecord struct {
	Key   string `gorm:"primary_key;column:key"`
	Value []byte `gorm:"column:value"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}

type sqliteKV struct {
	db *gorm.DB
}

// NewSqliteKV wraps a gorm sqlite handle as a KV. The backing table is
// created on first use.
func NewSqliteKV(db *gorm.DB) (KV, error) {
	if err := db.AutoMigrate(&KVRecord{}).Error; err != nil {
		return nil, err
	}
	return &sqliteKV{db: db}, nil
}

func (s *sqliteKV) Get(key string, out interface{}) bool {
	var rec KVRecord
	if err := s.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			log.WithField("prefix", "kv").WithError(err).Error("read key ", key)
		}
		return false
	}

	if err := json.Unmarshal(rec.Value, out); err != nil {
		log.WithField("prefix", "kv").WithError(err).Error("corrupted value under key ", key)
		return false
	}
	return true
}

func (s *sqliteKV) Set(key string, value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		log.WithField("prefix", "kv").WithError(err).Error("serialize value for key ", key)
		return
	}

	result := s.db.Model(&KVRecord{}).Where("key = ?", key).Update("value", b)
	if result.Error != nil {
		log.WithField("prefix", "kv").WithError(result.Error).Error("write key ", key)
		return
	}
	if result.RowsAffected == 0 {
		if err := s.db.Create(&KVRecord{Key: key, Value: b}).Error; err != nil {
			log.WithField("prefix", "kv").WithError(err).Error("write key ", key)
		}
	}
}

func (s *sqliteKV) Delete(key string) {
	if err := s.db.Delete(&KVRecord{}, "key = ?", key).Error; err != nil {
		log.WithField("prefix", "kv").WithError(err).Error("delete key ", key)
	}
}

func (s *sqliteKV) Has(key string) bool {
	var count int
	s.db.Model(&KVRecord{}).Where("key = ?", key).Count(&count)
	return count > 0
}

type memoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV returns an ephemeral KV. It shares the serialization and
// error-swallowing behavior of the sqlite implementation.
func NewMemoryKV() KV {
	return &memoryKV{
		values: make(map[string][]byte),
	}
}

func (m *memoryKV) Get(key string, out interface{}) bool {
	m.mu.RLock()
	b, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(b, out); err != nil {
		log.WithField("prefix", "kv").WithError(err).Error("corrupted value under key ", key)
		return false
	}
	return true
}

func (m *memoryKV) Set(key string, value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		log.WithField("prefix", "kv").WithError(err).Error("serialize value for key ", key)
		return
	}

	m.mu.Lock()
	m.values[key] = b
	m.mu.Unlock()
}

func (m *memoryKV) Delete(key string) {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
}

func (m *memoryKV) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok
}

// SetRaw plants raw bytes under a key, bypassing serialization. Used by
// tests to simulate corrupted storage.
func (m *memoryKV) SetRaw(key string, value []byte) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}
