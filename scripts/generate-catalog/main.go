package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-shapekit/pkg/catalog"
)

func main() {
	var (
		shapesDir  = flag.String("shapes", "assets/shapes", "directory of shape template sources")
		outputPath = flag.String("output", "pkg/catalog/catalog.json", "output path for the catalogue artifact")
		sanitize   = flag.Bool("sanitize", true, "run each template through the shape sanitizer")
	)
	flag.Parse()

	entries, err := os.ReadDir(*shapesDir)
	if err != nil {
		log.Fatalf("read shapes directory: %v", err)
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".svg") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(*shapesDir, entry.Name()))
		if err != nil {
			log.Fatalf("read %s: %v", entry.Name(), err)
		}
		text := strings.TrimSpace(string(data))
		if *sanitize {
			text = catalog.Sanitize(text)
		}
		// Malformed templates fail the build here instead of rendering
		// with unreplaced tokens later.
		if _, err := catalog.Compile(len(templates)+1, text); err != nil {
			log.Fatalf("compile %s: %v", entry.Name(), err)
		}
		templates = append(templates, text)
	}
	if len(templates) == 0 {
		log.Fatalf("no shape templates found in %s", *shapesDir)
	}

	artifact := catalog.Artifact{
		Version:   catalog.ArtifactVersion,
		Templates: templates,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(artifact); err != nil {
		log.Fatalf("marshal artifact: %v", err)
	}

	if err := atomic.WriteFile(*outputPath, &buf); err != nil {
		log.Fatalf("write artifact: %v", err)
	}
	fmt.Printf("✓ Wrote %d shape template(s) to %s\n", len(templates), *outputPath)
}
