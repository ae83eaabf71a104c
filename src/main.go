package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jinjor/terminal-piano/src/audio"
	"github.com/jinjor/terminal-piano/src/tui"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// paramFlags collects repeated -set name=value flags.
type paramFlags []string

func (f *paramFlags) String() string {
	return strings.Join(*f, ",")
}

func (f *paramFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var sets paramFlags
	configPath := flag.String("config", "", "JSON file overriding the default params")
	deviceName := flag.String("device", "oto", "audio output: oto, beep or none")
	logPath := flag.String("log", "terminal-piano.log", "log file, empty to disable logging")
	velocity := flag.Float64("velocity", 1.0, "velocity of every key press (0-1]")
	flag.Var(&sets, "set", "override a single param as name=value (repeatable)")
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalln("error: stdin is not a terminal")
	}
	params, err := loadParams(*configPath, sets)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}

	if *logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := tea.LogToFile(*logPath, "")
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
		defer f.Close()
	}
	log.Printf("params: %s\n", params.ToJSON())

	device, err := audio.OpenDevice(*deviceName, params.SampleRate)
	if err != nil {
		log.Fatalf("error: failed to open %s device: %v\n", *deviceName, err)
	}
	audio, err := audio.NewAudio(params, device)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	defer audio.Close()

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalCh)
		cancel()
	}()
	go func() {
		select {
		case sig := <-signalCh:
			log.Printf("Caught signal %s: shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	program := tea.NewProgram(tui.NewModel(audio, *velocity, width), tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	// sounding notes are abandoned, not awaited
	log.Println("main() ended.")
}

func loadParams(configPath string, sets []string) (*audio.Params, error) {
	params := audio.NewParams()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := params.ApplyJSON(data); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	}
	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid -set %q, expected name=value", set)
		}
		if err := params.Set(key, value); err != nil {
			return nil, fmt.Errorf("-set %s: %w", key, err)
		}
	}
	return params, params.Validate()
}
