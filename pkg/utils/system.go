package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 CPU/메모리 사용률(0~1)을 반환합니다.
// 수집에 실패한 항목은 0으로 처리합니다.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage float64
	var memoryUsage float64

	// CPU 사용률 (순간 샘플)
	percents, err := cpu.Percent(0, false)
	if err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	}

	// 메모리 사용률
	vm, err := mem.VirtualMemory()
	if err == nil {
		memoryUsage = vm.UsedPercent / 100.0
	}

	return cpuUsage, memoryUsage
}
