// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jafarpenot/ter/solver"
)

// Flag and configuration keys.
const (
	keyConfig    = "config"
	keyGrid      = "grid"
	keyShiftK    = "shift-k"
	keyEta       = "eta"
	keyTol       = "tol"
	keyMaxIter   = "max-iter"
	keyReport    = "report-every"
	keyPrecond   = "precond"
	keyOmega     = "omega"
	keyRCM       = "rcm"
	keyDirect    = "direct"
	keyDump      = "dump"
	keyPlot      = "plot"
	keyOut       = "out"
	keySingle    = "single"
	keySwap      = "swap"
	keyPart      = "part"
	keyLogLevel  = "log-level"
	envPrefix    = "COCG"
	defaultGrid  = 16
	defaultOmega = 1.0
)

// Preconditioner names accepted by --precond.
const (
	precondIdentity = "identity"
	precondJacobi   = "jacobi"
	precondSSOR     = "ssor"
)

var (
	errBadConfig    = errors.New("cocg: invalid configuration")
	errNotConverged = errors.New("cocg: solve did not converge")
)

// config is the resolved command configuration.
type config struct {
	grid        int
	shiftK      float64
	eta         float64
	tol         float64
	maxIter     int
	reportEvery int
	precond     string
	omega       float64
	rcm         bool
	direct      bool
	dump        string
	plot        string
	out         string
	single      bool
	swap        bool
	part        string
	logLevel    logrus.Level
}

// complexShift reports whether the Helmholtz (complex) problem is requested.
func (c config) complexShift() bool { return c.shiftK != 0 || c.eta != 0 }

// addFlags declares every flag on fs.
func addFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "configuration file (yaml, toml or json)")
	fs.Int(keyGrid, defaultGrid, "interior grid points per side")
	fs.Float64(keyShiftK, 0, "Helmholtz wave number k; 0 solves the Poisson problem")
	fs.Float64(keyEta, 0, "damping η of the complex shift k²(1+iη)")
	fs.Float64(keyTol, solver.DefaultTolerance, "relative residual tolerance")
	fs.Int(keyMaxIter, solver.DefaultMaxIterations, "iteration cap")
	fs.Int(keyReport, solver.DefaultReportEvery, "residual report period in iterations")
	fs.String(keyPrecond, precondIdentity, "preconditioner: identity, jacobi or ssor")
	fs.Float64(keyOmega, defaultOmega, "SSOR relaxation factor in (0,2)")
	fs.Bool(keyRCM, false, "reorder with reverse Cuthill-McKee before solving")
	fs.Bool(keyDirect, false, "cross-check against a direct factorization")
	fs.String(keyDump, "", "write the assembled matrix as text triplets to this path")
	fs.String(keyPlot, "", "write the residual history as a PNG plot to this path")
	fs.String(keyOut, "", "write the solution to this path (binary for Poisson, Medit .bb for Helmholtz)")
	fs.Bool(keySingle, false, "binary output in single precision")
	fs.Bool(keySwap, false, "binary output in the byte order opposite to the host's")
	fs.String(keyPart, "real", "Medit field for complex output: real, imag or modulus")
	fs.String(keyLogLevel, logrus.InfoLevel.String(), "log level")
}

// newViper binds fs and the COCG_* environment, then reads the optional
// configuration file named by --config.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	if err := vip.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if path := vip.GetString(keyConfig); path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	return vip, nil
}

// loadConfig resolves and validates the configuration.
func loadConfig(vip *viper.Viper) (config, error) {
	cfg := config{
		grid:        vip.GetInt(keyGrid),
		shiftK:      vip.GetFloat64(keyShiftK),
		eta:         vip.GetFloat64(keyEta),
		tol:         vip.GetFloat64(keyTol),
		maxIter:     vip.GetInt(keyMaxIter),
		reportEvery: vip.GetInt(keyReport),
		precond:     strings.ToLower(vip.GetString(keyPrecond)),
		omega:       vip.GetFloat64(keyOmega),
		rcm:         vip.GetBool(keyRCM),
		direct:      vip.GetBool(keyDirect),
		dump:        vip.GetString(keyDump),
		plot:        vip.GetString(keyPlot),
		out:         vip.GetString(keyOut),
		single:      vip.GetBool(keySingle),
		swap:        vip.GetBool(keySwap),
		part:        strings.ToLower(vip.GetString(keyPart)),
	}

	level, err := logrus.ParseLevel(vip.GetString(keyLogLevel))
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errBadConfig, err)
	}
	cfg.logLevel = level

	switch {
	case cfg.grid <= 0:
		return cfg, fmt.Errorf("%w: grid must be > 0, got %d", errBadConfig, cfg.grid)
	case cfg.tol < 0:
		return cfg, fmt.Errorf("%w: tol must be >= 0, got %g", errBadConfig, cfg.tol)
	case cfg.maxIter < 0:
		return cfg, fmt.Errorf("%w: max-iter must be >= 0, got %d", errBadConfig, cfg.maxIter)
	case cfg.reportEvery <= 0:
		return cfg, fmt.Errorf("%w: report-every must be > 0, got %d", errBadConfig, cfg.reportEvery)
	case cfg.omega <= 0 || cfg.omega >= 2:
		return cfg, fmt.Errorf("%w: omega must be in (0,2), got %g", errBadConfig, cfg.omega)
	}
	switch cfg.precond {
	case precondIdentity, precondJacobi, precondSSOR:
	default:
		return cfg, fmt.Errorf("%w: unknown preconditioner %q", errBadConfig, cfg.precond)
	}
	if _, err := parsePart(cfg.part); err != nil {
		return cfg, err
	}

	return cfg, nil
}
