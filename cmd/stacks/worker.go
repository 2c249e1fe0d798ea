package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hollowbeak/stacks/pkg/api"
)

const (
	docWorker = `Run task consumers`
)

type optsWorker struct {
	optsGeneral
	optsDatabase
	optsQueue
	optsEngine
}

func (c *optsWorker) Execute(args []string) error {
	// This runs the consumer pool only: it pulls tasks off the shared queue
	// and executes them. Run as many of these as the library needs.
	opts, err := buildOptions(c.optsGeneral, c.optsDatabase, c.optsQueue)
	if err != nil {
		return err
	}
	c.optsEngine.apply(opts)

	svc, err := api.New(opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err = svc.Run(context.Background()); err != nil {
		return err
	}

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt)
	<-exit

	return nil
}
