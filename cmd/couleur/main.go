// cmd/couleur/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/couleur/internal/cli"
)

func main() {
	// batch may block reading stdin; exit cleanly on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Interrupt received, exiting")
		os.Exit(130)
	}()

	cli.Execute()
}
