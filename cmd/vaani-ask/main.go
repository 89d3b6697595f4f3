package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/subuhana2303/vaanirakshak/internal/alert"
	"github.com/subuhana2303/vaanirakshak/internal/catalog"
	"github.com/subuhana2303/vaanirakshak/internal/classify"
	"github.com/subuhana2303/vaanirakshak/internal/config"
	"github.com/subuhana2303/vaanirakshak/internal/location"
	"github.com/subuhana2303/vaanirakshak/internal/logging"
	"github.com/subuhana2303/vaanirakshak/internal/response"
)

// One-shot mode: classify a single utterance from the command line and print
// the guidance, without starting the server or the listening loop.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: vaani-ask <utterance>")
		os.Exit(2)
	}
	utterance := strings.Join(os.Args[1:], " ")

	data := catalog.Load(cfg.Data.PhrasesFile, cfg.Data.SheltersFile, cfg.Data.LocationsFile)
	locations := location.NewSimulated(data.Base)

	sink := alert.NewLogSink(nil, 1, 4)
	sink.Start(context.Background())
	defer sink.Stop()

	classifier := classify.New(data.Phrases)
	generator := response.NewGenerator(data.Shelters, locations, sink, cfg.Assistant.ShelterLimit)

	category := classifier.Classify(utterance)
	fmt.Printf("Category: %s\n\n%s\n", category, generator.Respond(category))
}
