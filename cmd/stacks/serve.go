package main

import (
	"context"

	"github.com/hollowbeak/stacks/pkg/api"
	server "github.com/hollowbeak/stacks/pkg/api/http"
)

const (
	docServe = `Run the API server and the task consumers in one process`
)

type optsServe struct {
	optsGeneral
	optsDatabase
	optsQueue
	optsEngine

	Addr string `long:"addr" env:"ADDR" default:"localhost:8100" description:"Address to bind to"`
}

func (c *optsServe) Execute(args []string) error {
	// This runs everything in one process: the HTTP API plus the consumer
	// pool behind it. With no database / queue URLs it is entirely
	// self-contained, which is the simplest way to run a single library
	// server on one machine.
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

	s := server.NewServer(c.Addr, c.Debug, logger())
	return s.ServeForever(svc)
}
