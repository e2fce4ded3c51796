// Package config holds globally available configuration variables, read
// from an optional TOML file with defaults used whenever the file or a
// field is missing. It holds only two settings (the priority map's memory
// budget and a PSQT tempo bonus); no other package of this module reads
// Settings or calls Setup. Search-, UCI- and time-management-related
// settings belong to the consuming search layer, not this module.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/fkopp/chesscore/internal/util"
)

// ConfFile holds the path to the config file, relative to the working
// directory.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	TT   ttConfiguration
	Eval evalConfiguration
}

type ttConfiguration struct {
	// SizeInMB is the memory budget for the priority-evicting map (§4.9).
	// Zero disables the map entirely.
	SizeInMB int
}

type evalConfiguration struct {
	// Tempo is a flat side-to-move bonus; eval.PSQT.Score does not add it.
	Tempo int16
}

func init() {
	Settings.TT.SizeInMB = 64
	Settings.Eval.Tempo = 20
}

// Setup reads ConfFile, overlaying defaults with whatever it finds. A
// missing or malformed file is not an error: the core falls back to the
// compiled-in defaults. A malformed file is logged; a missing file is
// not. This mirrors how the core as a whole never fails at runtime
// outside of FEN parsing.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, decodeErr := toml.DecodeFile(path, &Settings); decodeErr != nil {
			log.Println("config file found but could not be decoded, using defaults:", decodeErr)
		}
	}
	initialized = true
}
