package metrics

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats снимает показатели процесса хоста
type ProcessStats struct {
	StartTime time.Time
}

// NewProcessStats запоминает время старта
func NewProcessStats() *ProcessStats {
	return &ProcessStats{StartTime: time.Now()}
}

// Uptime возвращает время работы в читаемом виде
func (ps *ProcessStats) Uptime() string {
	uptime := time.Since(ps.StartTime)

	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	default:
		return fmt.Sprintf("%dс", seconds)
	}
}

// MemoryMB возвращает резидентную память процесса (RSS) в мегабайтах.
// Если gopsutil не может её прочитать, возвращается размер кучи Go.
func (ps *ProcessStats) MemoryMB() float64 {
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil && info.RSS > 0 {
			return float64(info.RSS) / 1024 / 1024
		}
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / 1024 / 1024
}

// CPUPercent возвращает загрузку CPU процессом; при ошибке - системную
func (ps *ProcessStats) CPUPercent() (float64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		if pct, err := proc.CPUPercent(); err == nil {
			return pct, nil
		}
	}

	pcts, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, fmt.Errorf("нет данных о загрузке CPU")
	}
	return pcts[0], nil
}

// Snapshot собирает показатели в одну структуру для /api/status
func (ps *ProcessStats) Snapshot() map[string]interface{} {
	out := map[string]interface{}{
		"uptime":     ps.Uptime(),
		"memory_mb":  fmt.Sprintf("%.1f", ps.MemoryMB()),
		"goroutines": runtime.NumGoroutine(),
	}
	if pct, err := ps.CPUPercent(); err == nil {
		out["cpu_percent"] = fmt.Sprintf("%.1f", pct)
	}
	return out
}
