package monitor

import (
	"runtime"
	"time"
)

// Session lives for one process lifetime and is never persisted.
type Session struct {
	ID           string    `json:"session_id"`
	StartTime    time.Time `json:"start_time"`
	PageViews    int64     `json:"page_views"`
	Interactions int64     `json:"interactions"`
	ErrorCount   int64     `json:"error_count"`
}

// User identifies who the current telemetry belongs to.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// RuntimeInfo holds process hints attached to error reports.
type RuntimeInfo struct {
	GoVersion  string `json:"go_version"`
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heap_alloc"`
	HeapSys    uint64 `json:"heap_sys"`
	NumGC      uint32 `json:"num_gc"`
}

func readRuntime() RuntimeInfo {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return RuntimeInfo{
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		NumGC:      ms.NumGC,
	}
}

// Report is the diagnostic snapshot attached to a captured error.
type Report struct {
	Environment string             `json:"environment"`
	Release     string             `json:"release,omitempty"`
	Session     Session            `json:"session"`
	User        *User              `json:"user,omitempty"`
	Performance map[string]float64 `json:"performance,omitempty"`
	Breadcrumbs []Breadcrumb       `json:"breadcrumbs"`
	Runtime     RuntimeInfo        `json:"runtime"`
}
