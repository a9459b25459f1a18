package monitoring

import (
	"database/sql"
	"runtime"
	"time"
)

// Service reports runtime health for the status endpoint.
type Service struct {
	db        *sql.DB
	counters  *RequestCounters
	startedAt time.Time
}

// Snapshot is the JSON shape served by /api/status.
type Snapshot struct {
	TimestampUTC       string `json:"timestamp_utc"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	HTTPActiveRequests int64  `json:"http_active_requests"`
	HTTPTotalRequests  uint64 `json:"http_total_requests"`
	DBOpenConnections  int    `json:"db_open_connections"`
	DBInUseConnections int    `json:"db_in_use_connections"`
	DBWaitCount        int64  `json:"db_wait_count"`
	Goroutines         int    `json:"goroutines"`
	GoMemoryAllocBytes uint64 `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes   uint64 `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes   uint64 `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32 `json:"go_gc_count"`
	UsersTotal         int64  `json:"users_total"`
	DBHealthy          bool   `json:"db_healthy"`
}

func NewService(db *sql.DB, counters *RequestCounters, startedAt time.Time) *Service {
	return &Service{db: db, counters: counters, startedAt: startedAt}
}

func (s *Service) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	dbStats := s.db.Stats()
	active, total := s.counters.Stats()

	var usersTotal int64
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&usersTotal)

	return Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests: active,
		HTTPTotalRequests:  total,
		DBOpenConnections:  dbStats.OpenConnections,
		DBInUseConnections: dbStats.InUse,
		DBWaitCount:        dbStats.WaitCount,
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: mem.Alloc,
		GoMemorySysBytes:   mem.Sys,
		GoHeapInUseBytes:   mem.HeapInuse,
		GoGCCount:          mem.NumGC,
		UsersTotal:         usersTotal,
		DBHealthy:          s.db.Ping() == nil,
	}
}
