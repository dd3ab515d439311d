package cmd

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/JulianGoede/rtracer/pkg/log"
	"github.com/urfave/cli"
)

func TestListScenes(t *testing.T) {
	defer func() {
		log.SetSink(os.Stderr)
		log.SetLevel(log.Notice)
	}()
	var buf bytes.Buffer
	log.SetSink(&buf)

	set := flag.NewFlagSet("scenes", flag.ContinueOnError)
	if err := ListScenes(cli.NewContext(nil, set, nil)); err != nil {
		t.Fatalf("ListScenes: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"default", "random-spheres", "Samples", "1200"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected scene listing to contain %q, got %q", want, out)
		}
	}
}
