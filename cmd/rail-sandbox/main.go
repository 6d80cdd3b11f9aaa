package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rail-walker/audio"
	"github.com/lixenwraith/rail-walker/input"
	"github.com/lixenwraith/rail-walker/parameter"
	"github.com/lixenwraith/rail-walker/scene"
	"github.com/lixenwraith/rail-walker/trace"
	"github.com/lixenwraith/rail-walker/walker"
)

var (
	sceneFlag   = flag.String("scene", "scenes/demo.toml", "Scene file")
	profileFlag = flag.String("profile", "", "Walker profile TOML (defaults when empty)")
	keysFlag    = flag.String("keys", "", "Keymap TOML merged over the default bindings")
	debugFlag   = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	recordFlag  = flag.String("record", "", "Record ticks and events to this SQLite file")
)

func main() {
	flag.Parse()
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "rail-sandbox: %v\n", err)
		os.Exit(1)
	}
}

// start wires the sandbox from the flags and runs it until quit
// Every resource opened here is released by its defer on any return path
func start() error {
	// Panic Recovery: restore the terminal before printing the trace
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAIL-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	sb, err := load()
	if err != nil {
		return err
	}

	if *recordFlag != "" {
		rec, err := trace.Open(*recordFlag)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("trace close: %v", err)
			}
		}()
		sb.attachRecorder(rec)
	}

	player := audio.NewPlayer(audio.LoadConfig())
	if err := player.Init(); err != nil {
		log.Printf("audio init failed: %v (continuing without audio)", err)
	}
	defer player.Close()
	if *muteFlag {
		player.ToggleMute()
	}
	sb.attachPlayer(player)

	screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Fini()

	run(screen, sb)
	return nil
}

// load builds the sandbox from the scene, profile, and keymap flags
func load() (*sandbox, error) {
	f, err := scene.Load(*sceneFlag)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *sceneFlag, err)
	}

	profile := walker.DefaultProfile()
	if *profileFlag != "" {
		if profile, err = walker.LoadProfile(*profileFlag); err != nil {
			return nil, err
		}
	}

	machine := input.NewMachine()
	if *keysFlag != "" {
		kt, err := input.LoadKeyConfigFile(*keysFlag)
		if err != nil {
			return nil, err
		}
		machine.SetKeyTable(kt)
	}

	return newSandbox(sc, profile, machine)
}

// run drives the sandbox until quit or terminal closure
func run(screen tcell.Screen, sb *sandbox) {
	v := newView(screen, sb.scene.Registry)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if sb.handleKey(ev, time.Now(), v) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			if err := sb.tick(now, parameter.TickInterval); err != nil {
				if errors.Is(err, trace.ErrClosed) {
					return
				}
				log.Printf("tick: %v", err)
			}
			v.draw(sb.walker.State(), sb.hud())
		}
	}
}

func itoa[T ~uint64 | ~int64 | ~int](n T) string {
	return strconv.FormatInt(int64(n), 10)
}
