package main

import (
	"errors"
	"flag"
	"fmt"

	layeredconfig "github.com/MKhiriev/go-layered-config"
	"github.com/MKhiriev/go-layered-config/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var defaultPath, localPath string
	var absolutePaths bool
	flag.StringVar(&defaultPath, "d", layeredconfig.DefaultFilePath, "Default config file path")
	flag.StringVar(&localPath, "l", layeredconfig.LocalFilePath, "Local config file path")
	flag.BoolVar(&absolutePaths, "abs", false, "Expand relative path values to absolute ones")
	flag.Parse()

	log := logger.NewLogger("configcheck")

	loader := layeredconfig.NewLoader().
		WithDefaultFile(defaultPath).
		WithLocalFile(localPath).
		WithEnv().
		WithLogger(log.Logger)
	if absolutePaths {
		loader = loader.WithAbsolutePaths()
	}

	cfg, err := loader.Load()
	if err != nil {
		var structErr *layeredconfig.StructureError
		if errors.As(err, &structErr) {
			for _, issue := range structErr.Issues {
				log.Error().
					Str("path", issue.Path).
					Str("reason", issue.Reason).
					Msg("config structure issue")
			}
			log.Fatal().
				Int("issues", len(structErr.Issues)).
				Str("default", defaultPath).
				Str("local", localPath).
				Msg("check and correct your config files")
		}

		log.Fatal().Err(err).Msg("error loading configs")
	}

	log.Info().
		Strs("sections", cfg.Keys()).
		Str("default", defaultPath).
		Str("local", localPath).
		Msg("configs are structurally valid")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
