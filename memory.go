package fieldbench

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

var ErrInsufficientMemory = errors.New("insufficient memory for workload")

var availableMemory = func() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// CheckMemory fails when the host reports less available memory than need.
// The Go runtime cannot recover from an out-of-memory condition, so this is
// the only point where the run can abort with a readable diagnostic.
func CheckMemory(need uint64) error {
	avail, err := availableMemory()
	if err != nil {
		return fmt.Errorf("read available memory: %w", err)
	}
	if need > avail {
		return fmt.Errorf("%w: need %d bytes, %d available", ErrInsufficientMemory, need, avail)
	}
	return nil
}

// cpuModel returns the first CPU model name and the logical core count, or
// empty values when the host does not expose them.
func cpuModel() (string, int) {
	var model string
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		cores = 0
	}
	return model, cores
}
