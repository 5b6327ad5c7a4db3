// Package config reads tuning knobs from the environment. The command
// line takes nothing but the input path.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const (
	ParserArith = "arith"
	ParserTable = "table"

	ProfileCPU = "cpu"
	ProfileMem = "mem"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Workers     int
	Segments    int
	Chunk       int
	Parser      string
	Debug       bool
	Profile     string
	ProfilePath string
}

func Default() Config {
	return Config{
		Workers:     runtime.GOMAXPROCS(-1),
		Segments:    8,
		Parser:      ParserArith,
		ProfilePath: ".",
	}
}

// FromEnv overlays the BRC_* variables on the defaults. lookup has
// the signature of os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	var err error
	if c.Workers, err = intVar(lookup, "BRC_WORKERS", c.Workers, 1); err != nil {
		return c, err
	}
	if c.Segments, err = intVar(lookup, "BRC_SEGMENTS", c.Segments, 1); err != nil {
		return c, err
	}
	if c.Chunk, err = intVar(lookup, "BRC_SORT_CHUNK", c.Chunk, 0); err != nil {
		return c, err
	}

	if v, ok := lookup("BRC_PARSER"); ok && v != "" {
		switch v = strings.ToLower(v); v {
		case ParserArith, ParserTable:
			c.Parser = v
		default:
			return c, fmt.Errorf("%w: BRC_PARSER=%q (use %s or %s)", ErrInvalid, v, ParserArith, ParserTable)
		}
	}

	if v, ok := lookup("BRC_DEBUG"); ok && v != "" {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return c, fmt.Errorf("%w: BRC_DEBUG=%q", ErrInvalid, v)
		}
	}

	if v, ok := lookup("BRC_PROFILE"); ok && v != "" {
		switch v = strings.ToLower(v); v {
		case ProfileCPU, ProfileMem:
			c.Profile = v
		default:
			return c, fmt.Errorf("%w: BRC_PROFILE=%q (use %s or %s)", ErrInvalid, v, ProfileCPU, ProfileMem)
		}
	}
	if v, ok := lookup("BRC_PROFILE_PATH"); ok && v != "" {
		c.ProfilePath = v
	}
	return c, nil
}

func intVar(lookup func(string) (string, bool), name string, def, lowest int) (int, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lowest {
		return def, fmt.Errorf("%w: %s=%q must be an integer >= %d", ErrInvalid, name, v, lowest)
	}
	return n, nil
}
