// Package server wires the pooled die and oracle runtimes and their gRPC
// lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/louisbranch/pooleddie/internal/platform/timeouts"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// runtime owns one listener, its gRPC server, and the resources closed with it.
type runtime struct {
	name       string
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	background []func(context.Context) error
	closers    []func() error
}

func listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return listener, nil
}

func (r *runtime) addr() string {
	if r == nil || r.listener == nil {
		return ""
	}
	return r.listener.Addr().String()
}

// serve runs the gRPC server and background loops until ctx ends.
func (r *runtime) serve(ctx context.Context) error {
	if r == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer r.close()

	bgCtx, cancelBackground := context.WithCancel(ctx)
	defer cancelBackground()
	for _, loop := range r.background {
		go func() {
			if err := loop(bgCtx); err != nil {
				log.Printf("%s background loop: %v", r.name, err)
			}
		}()
	}

	log.Printf("%s server listening at %v", r.name, r.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- r.grpcServer.Serve(r.listener)
	}()

	select {
	case <-ctx.Done():
		if r.health != nil {
			r.health.Shutdown()
		}
		gracefulStop(r.grpcServer, timeouts.Shutdown)
		return serveResult(<-serveErr)
	case err := <-serveErr:
		return serveResult(err)
	}
}

// gracefulStop drains in-flight RPCs, forcing a stop once timeout elapses.
func gracefulStop(grpcServer *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		grpcServer.Stop()
		<-done
	}
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

func (r *runtime) close() {
	if r == nil {
		return
	}
	if r.health != nil {
		r.health.Shutdown()
	}
	if r.grpcServer != nil {
		r.grpcServer.Stop()
	}
	if r.listener != nil {
		_ = r.listener.Close()
	}
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			log.Printf("close %s resource: %v", r.name, err)
		}
	}
	r.closers = nil
}
