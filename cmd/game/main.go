package main

import (
	"io"
	"log"
	"os"

	"github.com/Garsondee/Rally-Sense/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	gdata "github.com/quasilyte/gdata/v2"
)

func main() {
	sinks := []io.Writer{os.Stderr}
	if logFile, err := os.OpenFile("rally.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644); err == nil {
		defer logFile.Close()
		sinks = append(sinks, logFile)
	}
	if longLog, err := os.OpenFile("rally.long.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer longLog.Close()
		sinks = append(sinks, longLog)
	}
	log.SetOutput(io.MultiWriter(sinks...))

	dataManager, err := gdata.Open(gdata.Config{AppName: "rally-sense"})
	if err != nil {
		log.Printf("[main] persistent storage unavailable: %v", err)
		dataManager = nil
	}
	settings := game.NewSettingsManager(dataManager)

	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settings)

	app := game.NewApp(settings, audioManager)

	ebiten.SetWindowTitle("Rally Sense")
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetTPS(30)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}

	if err := settings.Save(); err != nil {
		log.Printf("[main] saving settings: %v", err)
	}
}
