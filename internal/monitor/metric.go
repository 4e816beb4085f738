package monitor

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

type Status string

const (
	StatusRunning    Status = "running"
	StatusIdle       Status = "idle"
	StatusOptimizing Status = "optimizing"
)

// Metric is one row of the algorithm monitor. Every figure is synthesized.
type Metric struct {
	Name          string  `json:"name"`
	Complexity    string  `json:"complexity"`
	MemoryUsage   float64 `json:"memoryUsage"`
	CPUUsage      float64 `json:"cpuUsage"`
	ExecutionTime float64 `json:"executionTime"`
	Throughput    int     `json:"throughput"`
	CacheHitRate  float64 `json:"cacheHitRate"`
	Status        Status  `json:"status"`
}

const (
	cpuStep    = 1.5
	memoryStep = 1.0
	execStep   = 0.25

	cpuFloor    = 1.0
	memoryFloor = 5.0
	execFloor   = 0.1

	usageCap = 100.0
)

func DefaultMetrics() []Metric {
	return []Metric{
		{Name: "Binary Search Tree", Complexity: "O(log n)", MemoryUsage: 15, CPUUsage: 8, ExecutionTime: 2.3, Throughput: 450, CacheHitRate: 94, Status: StatusRunning},
		{Name: "Hash Table Lookup", Complexity: "O(1)", MemoryUsage: 22, CPUUsage: 5, ExecutionTime: 0.8, Throughput: 1200, CacheHitRate: 98, Status: StatusRunning},
		{Name: "Graph Traversal", Complexity: "O(V + E)", MemoryUsage: 35, CPUUsage: 18, ExecutionTime: 8.7, Throughput: 180, CacheHitRate: 87, Status: StatusOptimizing},
		{Name: "Dynamic Programming", Complexity: "O(n²)", MemoryUsage: 28, CPUUsage: 12, ExecutionTime: 15.2, Throughput: 85, CacheHitRate: 91, Status: StatusRunning},
	}
}

// Perturb returns a copy of metrics with cpu, memory and execution time nudged
// by a uniform step and held above their floors. The input is not modified.
func Perturb(src rand.Source, metrics []Metric) []Metric {
	out := make([]Metric, len(metrics))
	for i, m := range metrics {
		m.CPUUsage = max(cpuFloor, m.CPUUsage+symmetric(src, cpuStep))
		m.MemoryUsage = max(memoryFloor, m.MemoryUsage+symmetric(src, memoryStep))
		m.ExecutionTime = max(execFloor, m.ExecutionTime+symmetric(src, execStep))
		out[i] = m
	}
	return out
}

func symmetric(src rand.Source, width float64) float64 {
	if width == 0 {
		return 0
	}
	return distuv.Uniform{Min: -width, Max: width, Src: src}.Rand()
}

// Totals is the header row of the monitor.
type Totals struct {
	CPUUsage         float64
	MemoryUsage      float64
	Throughput       int
	AvgCacheHitRate  float64
	AvgExecutionTime float64
	Running          int
	Optimizing       int
}

// Summarize adds up metrics. CPU and memory totals are capped at 100.
func Summarize(metrics []Metric) Totals {
	var t Totals
	var cache, exec float64
	for _, m := range metrics {
		t.CPUUsage += m.CPUUsage
		t.MemoryUsage += m.MemoryUsage
		t.Throughput += m.Throughput
		cache += m.CacheHitRate
		exec += m.ExecutionTime
		switch m.Status {
		case StatusRunning:
			t.Running++
		case StatusOptimizing:
			t.Optimizing++
		}
	}
	t.CPUUsage = min(t.CPUUsage, usageCap)
	t.MemoryUsage = min(t.MemoryUsage, usageCap)
	if n := float64(len(metrics)); n > 0 {
		t.AvgCacheHitRate = cache / n
		t.AvgExecutionTime = exec / n
	}
	return t
}
