package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/services"
	"routing/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	LogLevel         string
	EngineConfigFile string
	ZoneJobSchedule  string
	Engine           EngineConfig
}

// DSN is the postgres connection string built from the DB_* variables.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// EngineConfig tunes the routing engine. It is read from an optional YAML
// file; absent keys keep their defaults.
//
//	speedKmh: 25
//	circleSegments: 64
//	budget:
//	  maxIterations: 20000
//	  maxStallIterations: 5000
//	  timeBudget: 250ms
//	zoneCoverage:
//	  center: {lat: 52.52, lon: 13.405}
//	  radiusKm: 12
//	  count: 8
//	locationReports:
//	  requestsPerSecond: 1
//	  burst: 5
//	  expiresIn: 3m
type EngineConfig struct {
	SpeedKmh        float64               `yaml:"speedKmh"`
	CircleSegments  int                   `yaml:"circleSegments"`
	Budget          BudgetConfig          `yaml:"budget"`
	ZoneCoverage    ZoneCoverageConfig    `yaml:"zoneCoverage"`
	LocationReports LocationReportsConfig `yaml:"locationReports"`
}

type BudgetConfig struct {
	MaxIterations      int           `yaml:"maxIterations"`
	MaxStallIterations int           `yaml:"maxStallIterations"`
	TimeBudget         time.Duration `yaml:"timeBudget"`
}

func (b BudgetConfig) toDomain() services.Budget {
	return services.Budget{
		MaxIterations:      b.MaxIterations,
		MaxStallIterations: b.MaxStallIterations,
		TimeBudget:         b.TimeBudget,
	}
}

// ZoneCoverageConfig is the area watched by the zone coverage job. A zero
// radius disables the job.
type ZoneCoverageConfig struct {
	Center   CoordinateConfig `yaml:"center"`
	RadiusKm float64          `yaml:"radiusKm"`
	Count    int              `yaml:"count"`
}

func (z ZoneCoverageConfig) Enabled() bool { return z.RadiusKm > 0 }

type CoordinateConfig struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

func (c CoordinateConfig) toDomain() kernel.Coordinate {
	return kernel.Coordinate{Lat: c.Lat, Lon: c.Lon}
}

type LocationReportsConfig struct {
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	Burst             int           `yaml:"burst"`
	ExpiresIn         time.Duration `yaml:"expiresIn"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SpeedKmh:       services.DefaultAssumedSpeedKmh,
		CircleSegments: kernel.DefaultCircleSegments,
		Budget: BudgetConfig{
			MaxIterations:      services.DefaultBudget.MaxIterations,
			MaxStallIterations: services.DefaultBudget.MaxStallIterations,
			TimeBudget:         services.DefaultBudget.TimeBudget,
		},
		ZoneCoverage: ZoneCoverageConfig{Count: 8},
		LocationReports: LocationReportsConfig{
			RequestsPerSecond: 1,
			Burst:             5,
			ExpiresIn:         3 * time.Minute,
		},
	}
}

// LoadEngineConfig layers the YAML file at path over DefaultEngineConfig.
// An empty path yields the defaults.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("read engine config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("parse engine config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return EngineConfig{}, fmt.Errorf("engine config %s: %w", path, err)
	}

	return cfg, nil
}

func (c EngineConfig) Validate() error {
	var speedErr, segmentsErr, zoneErr, reportsErr error
	if !(c.SpeedKmh > 0) || c.SpeedKmh > services.MaxAssumedSpeedKmh {
		speedErr = errs.NewValueIsOutOfRangeError("speedKmh", c.SpeedKmh, 0, services.MaxAssumedSpeedKmh)
	}
	if c.CircleSegments < kernel.MinPolygonVertices {
		segmentsErr = errs.NewValueIsOutOfRangeError("circleSegments", c.CircleSegments, kernel.MinPolygonVertices, "unbounded")
	}
	if c.ZoneCoverage.Enabled() {
		if err := c.ZoneCoverage.Center.toDomain().Validate(); err != nil {
			zoneErr = errs.NewValueIsInvalidErrorWithCause("zoneCoverage.center", err)
		} else if c.ZoneCoverage.Count < 1 || c.ZoneCoverage.Count > services.MaxZones {
			zoneErr = errs.NewValueIsOutOfRangeError("zoneCoverage.count", c.ZoneCoverage.Count, 1, services.MaxZones)
		}
	}
	if c.LocationReports.RequestsPerSecond < 0 || c.LocationReports.Burst < 0 || c.LocationReports.ExpiresIn < 0 {
		reportsErr = errs.NewValueIsInvalidErrorWithCause("locationReports", errors.New("values must not be negative"))
	}

	return errors.Join(speedErr, segmentsErr, c.Budget.toDomain().Validate(), zoneErr, reportsErr)
}
