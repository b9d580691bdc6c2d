package device

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSysfsRoot is where Linux and Android expose power and thermal classes
const DefaultSysfsRoot = "/sys/class"

// ErrNoBattery is returned when no battery supply is found
var ErrNoBattery = errors.New("no battery found")

// Sysfs reads power_supply and thermal zones from a sysfs tree
type Sysfs struct {
	Root string
}

// NewSysfs returns a reader over root, or DefaultSysfsRoot if root is empty
func NewSysfs(root string) *Sysfs {
	if root == "" {
		root = DefaultSysfsRoot
	}
	return &Sysfs{Root: root}
}

func (s *Sysfs) Read(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}

	battery, err := s.findBattery()
	if err != nil {
		return State{}, err
	}

	level, err := readInt(filepath.Join(battery, "capacity"))
	if err != nil {
		return State{}, fmt.Errorf("failed to read battery capacity: %w", err)
	}

	status, err := readString(filepath.Join(battery, "status"))
	if err != nil {
		return State{}, fmt.Errorf("failed to read battery status: %w", err)
	}
	charging := status == "Charging" || status == "Full"
	if !charging {
		charging = s.externalPowerOnline()
	}

	return State{
		BatteryLevel: level,
		IsCharging:   charging,
		Temperature:  s.maxThermalZone(),
	}, nil
}

func (s *Sysfs) findBattery() (string, error) {
	supplies, err := os.ReadDir(filepath.Join(s.Root, "power_supply"))
	if err != nil {
		return "", fmt.Errorf("failed to list power supplies: %w", err)
	}
	for _, supply := range supplies {
		dir := filepath.Join(s.Root, "power_supply", supply.Name())
		kind, err := readString(filepath.Join(dir, "type"))
		if err == nil && kind == "Battery" {
			return dir, nil
		}
	}
	return "", ErrNoBattery
}

func (s *Sysfs) externalPowerOnline() bool {
	supplies, err := os.ReadDir(filepath.Join(s.Root, "power_supply"))
	if err != nil {
		return false
	}
	for _, supply := range supplies {
		dir := filepath.Join(s.Root, "power_supply", supply.Name())
		kind, err := readString(filepath.Join(dir, "type"))
		if err != nil || kind == "Battery" {
			continue
		}
		if online, err := readInt(filepath.Join(dir, "online")); err == nil && online == 1 {
			return true
		}
	}
	return false
}

// maxThermalZone returns the hottest zone in Celsius, 0 if none is readable.
// Zones report millidegrees.
func (s *Sysfs) maxThermalZone() float64 {
	zones, err := filepath.Glob(filepath.Join(s.Root, "thermal", "thermal_zone*", "temp"))
	if err != nil {
		return 0
	}
	var hottest float64
	for _, zone := range zones {
		milli, err := readInt(zone)
		if err != nil {
			continue
		}
		if c := float64(milli) / 1000; c > hottest {
			hottest = c
		}
	}
	return hottest
}

func readString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readInt(path string) (int, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
