package system

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrInsufficientMemory is returned by Headroom when frames exceed free RAM
var ErrInsufficientMemory = errors.New("not enough free memory to hold all frames")

var configExtensions = []string{".yaml", ".yml"}

// FindLatestConfig returns the most recently modified YAML document in dir
func FindLatestConfig(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		isConfig := false
		for _, ext := range configExtensions {
			if strings.HasSuffix(strings.ToLower(f.Name()), ext) {
				isConfig = true
				break
			}
		}
		if isConfig {
			info, err := f.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(latestTime) {
				latestTime = info.ModTime()
				latestFile = filepath.Join(dir, f.Name())
			}
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено YAML-файлов", dir)
	}

	return latestFile, nil
}

// Info is a snapshot of the host resources relevant to frame generation
type Info struct {
	LogicalCPUs    int
	TotalBytes     uint64
	AvailableBytes uint64
}

// Probe reads CPU and memory figures from the OS. Missing figures are left
// zero, except the CPU count which falls back to the Go runtime.
func Probe() Info {
	info := Info{LogicalCPUs: runtime.NumCPU()}

	if n, err := cpu.Counts(true); err == nil && n > 0 {
		info.LogicalCPUs = n
	} else if err != nil {
		log.Printf("[!] Не удалось определить число ядер: %v", err)
	}

	if v, err := mem.VirtualMemory(); err == nil {
		info.TotalBytes = v.Total
		info.AvailableBytes = v.Available
	} else {
		log.Printf("[!] Не удалось получить сведения о памяти: %v", err)
	}

	return info
}

// Workers picks the worker count: the requested value when positive,
// otherwise one per logical CPU.
func (i Info) Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	if i.LogicalCPUs > 0 {
		return i.LogicalCPUs
	}
	return 1
}

// FrameMemory is the host memory taken by frames held one byte per pixel
func FrameMemory(frames, width, height int) uint64 {
	if frames <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	return uint64(frames) * uint64(width) * uint64(height)
}

// Headroom fails when the frames would not fit in available memory.
// An unknown (zero) figure is never treated as a shortage.
func (i Info) Headroom(frames, width, height int) error {
	need := FrameMemory(frames, width, height)
	if i.AvailableBytes == 0 || need <= i.AvailableBytes {
		return nil
	}
	return fmt.Errorf("%w: need %d MB, available %d MB", ErrInsufficientMemory, need>>20, i.AvailableBytes>>20)
}
