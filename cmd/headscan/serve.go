package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	headscanhttp "github.com/TsuyoshiKashiwazaki/headscan/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := headscanhttp.NewServer(deps.Documents, deps.Checker, deps.Logger)

	srv := &http.Server{
		Addr:         c.Addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-deps.Ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
