// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command bootstrap shows the intended use of confseed: one Apply call
// before the host application initializes, followed by a typed decode
// of the flat settings.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/confseed/confseed"
)

type hostConfig struct {
	Debug          bool          `config:"debug"`
	DBName         string        `config:"dbname"`
	SessionTimeout time.Duration `config:"sessiontimeout"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: bootstrap <settings-file>")
	}

	var cfg confseed.Config
	err := confseed.Apply(&cfg, os.Args[1],
		confseed.LogHandler(slog.NewTextHandler(os.Stderr, nil)),
	)
	if err != nil {
		log.Fatal(err)
	}

	var host hostConfig
	err = cfg.Decode(&host)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("host: %+v\n", host)
	for name, section := range cfg.Components {
		fmt.Printf("component %s: %v\n", name, section)
	}
}
