package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"uconn.dev/tracecheck/intake"
)

func main() {
	fs := flag.NewFlagSet("tracecheck-intaked", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7707", "listen address")

	_ = fs.Parse(os.Args[1:])

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	intake.RegisterIntakeServer(s, &intake.Server{Store: intake.NewMemStore()})

	fmt.Fprintf(os.Stderr, "tracecheck-intaked listening on %s\n", lis.Addr().String())
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
