package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// MiningState is the control loop state
type MiningState string

const (
	MiningStopped  MiningState = "stopped"
	MiningStarting MiningState = "starting"
	MiningRunning  MiningState = "running"
	MiningStopping MiningState = "stopping"
)

// PlaceholderJobPrefix namespaces locally synthesized jobs
const PlaceholderJobPrefix = "local-"

// MiningJob is a unit of work fetched from the node. Never mutated after fetch.
type MiningJob struct {
	JobID       string    `json:"jobId"`
	Version     int32     `json:"version"`
	PrevHash    string    `json:"prevHash"`
	MerkleRoot  string    `json:"merkleRoot"`
	Time        uint32    `json:"time"`
	Bits        uint32    `json:"bits"`
	Target      string    `json:"target"` // 256-bit big-endian hex
	Difficulty  float64   `json:"difficulty"`
	Placeholder bool      `json:"placeholder"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Lower bounds keep a misconfigured client from turning the loops into busy spins
const (
	MinSleepBetweenBatches = time.Millisecond
	MinMonitorInterval     = 100 * time.Millisecond
	MinJobRefreshInterval  = time.Second
)

// MiningConfig is caller supplied and may change at any time.
// On the wire the three intervals are integer milliseconds.
type MiningConfig struct {
	Enabled                 bool          `json:"enabled"`
	PoolURL                 string        `json:"poolUrl,omitempty"`
	WorkerName              string        `json:"workerName,omitempty"`
	MaxBatteryDrain         int           `json:"maxBatteryDrain"` // percent per hour, informational
	EnableOnBattery         bool          `json:"enableOnBattery"`
	EnableOnCharging        bool          `json:"enableOnCharging"`
	MinBatteryLevel         int           `json:"minBatteryLevel"`
	MaxTemperature          float64       `json:"maxTemperature"` // Celsius
	HashBatchSize           int           `json:"hashBatchSize"`
	BackgroundHashBatchSize int           `json:"backgroundHashBatchSize"`
	SleepBetweenBatches     time.Duration `json:"sleepBetweenBatches"`
	LowPowerMode            bool          `json:"lowPowerMode"`
	MonitorInterval         time.Duration `json:"monitorInterval"`
	JobRefreshInterval      time.Duration `json:"jobRefreshInterval"`
}

// DefaultMiningConfig returns the mobile-friendly defaults
func DefaultMiningConfig() MiningConfig {
	return MiningConfig{
		MaxBatteryDrain:         5,
		EnableOnBattery:         false,
		EnableOnCharging:        true,
		MinBatteryLevel:         30,
		MaxTemperature:          40,
		HashBatchSize:           100,
		BackgroundHashBatchSize: 10,
		SleepBetweenBatches:     100 * time.Millisecond,
		LowPowerMode:            true,
		MonitorInterval:         5 * time.Second,
		JobRefreshInterval:      30 * time.Second,
	}
}

// Validate checks MiningConfig values
func (c MiningConfig) Validate() error {
	switch {
	case c.MinBatteryLevel < 0 || c.MinBatteryLevel > 100:
		return errors.New("minBatteryLevel must be between 0 and 100")
	case c.MaxTemperature <= 0:
		return errors.New("maxTemperature must be positive")
	case c.HashBatchSize <= 0 || c.BackgroundHashBatchSize <= 0:
		return errors.New("batch sizes must be positive")
	case c.SleepBetweenBatches < MinSleepBetweenBatches:
		return errors.New("sleepBetweenBatches must be at least 1ms")
	case c.MonitorInterval < MinMonitorInterval:
		return errors.New("monitorInterval must be at least 100ms")
	case c.JobRefreshInterval < MinJobRefreshInterval:
		return errors.New("jobRefreshInterval must be at least 1s")
	}
	return nil
}

type miningConfigAlias MiningConfig

type miningConfigJSON struct {
	miningConfigAlias
	SleepBetweenBatches int64 `json:"sleepBetweenBatches"`
	MonitorInterval     int64 `json:"monitorInterval"`
	JobRefreshInterval  int64 `json:"jobRefreshInterval"`
}

// MarshalJSON writes the intervals as milliseconds
func (c MiningConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(miningConfigJSON{
		miningConfigAlias:   miningConfigAlias(c),
		SleepBetweenBatches: c.SleepBetweenBatches.Milliseconds(),
		MonitorInterval:     c.MonitorInterval.Milliseconds(),
		JobRefreshInterval:  c.JobRefreshInterval.Milliseconds(),
	})
}

// UnmarshalJSON reads the intervals as milliseconds and rejects unknown
// fields. Fields absent from data keep their current values.
func (c *MiningConfig) UnmarshalJSON(data []byte) error {
	aux := miningConfigJSON{
		miningConfigAlias:   miningConfigAlias(*c),
		SleepBetweenBatches: c.SleepBetweenBatches.Milliseconds(),
		MonitorInterval:     c.MonitorInterval.Milliseconds(),
		JobRefreshInterval:  c.JobRefreshInterval.Milliseconds(),
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	*c = MiningConfig(aux.miningConfigAlias)
	c.SleepBetweenBatches = time.Duration(aux.SleepBetweenBatches) * time.Millisecond
	c.MonitorInterval = time.Duration(aux.MonitorInterval) * time.Millisecond
	c.JobRefreshInterval = time.Duration(aux.JobRefreshInterval) * time.Millisecond
	return nil
}

// MiningStats is a read-only snapshot published by the control loop
type MiningStats struct {
	State          MiningState `json:"state"`
	IsActive       bool        `json:"isActive"`
	Background     bool        `json:"background"`
	HashRate       float64     `json:"hashRate"` // cumulative average, hashes per second
	NoncesTried    uint64      `json:"noncesTried"`
	SharesFound    uint64      `json:"sharesFound"`
	SharesAccepted uint64      `json:"sharesAccepted"`
	SharesRejected uint64      `json:"sharesRejected"`
	Uptime         int64       `json:"uptime"` // seconds
	Temperature    float64     `json:"temperature"`
	BatteryLevel   int         `json:"batteryLevel"`
	IsCharging     bool        `json:"isCharging"`
	JobID          string      `json:"jobId,omitempty"`
	LastShareTime  *time.Time  `json:"lastShareTime,omitempty"`
	StopReason     string      `json:"stopReason,omitempty"`
}

// BackgroundRequest represents request for PUT /mining/background
type BackgroundRequest struct {
	Background bool `json:"background"`
}

// CanRunResponse represents response for GET /mining/can-run
type CanRunResponse struct {
	CanRun bool `json:"canRun"`
}
