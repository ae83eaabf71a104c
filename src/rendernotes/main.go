package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/jinjor/terminal-piano/src/audio"
	"golang.org/x/sync/errgroup"
)

func main() {
	velocity := flag.Float64("velocity", 1.0, "velocity of every rendered note")
	flag.Parse()
	dir := flag.Arg(0)
	if dir == "" {
		log.Fatalln("usage: rendernotes [-velocity v] DIR")
	}
	log.SetFlags(log.Lshortfile)

	params := audio.NewParams()
	if err := renderAll(params, dir, *velocity); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("Successfully rendered notes.")
}

// renderAll writes DIR/<key>.wav for every mapped key.
func renderAll(params *audio.Params, dir string, velocity float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	var g errgroup.Group
	for _, key := range params.KeyMap.Keys() {
		key := key
		g.Go(func() error {
			samples, ok := params.Render(key, velocity)
			if !ok {
				return fmt.Errorf("no frequency for key %q", key)
			}
			path := filepath.Join(dir, key+".wav")
			if err := writeWav(path, samples, params.SampleRate); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Printf("rendered %s\n", path)
			return nil
		})
	}
	return g.Wait()
}

func writeWav(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, audio.NewStreamer(samples), format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
