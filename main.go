package main

import (
	"flag"
	"log"

	"qrd/internal/di"
	"qrd/internal/structures"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the yaml config file")
	debug := flag.Bool("debug", false, "enable debug mode (console logging)")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	_, err := di.InitApp(flags)
	if err != nil {
		log.Fatalf("failed to start: %s", err)
	}
}
