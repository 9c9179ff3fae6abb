package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nareshv/http-server/internal/server"
)

func main() {
	port := flag.Int("p", 8080, "port to listen on")
	webroot := flag.String("r", "", "directory to serve")
	index := flag.String("i", "index.html", "index filename served for directory URLs")
	name := flag.String("n", "Route5/1.0", "server identification string")
	noIndex := flag.Bool("no-index", false, "answer 403 for directory URLs instead of serving the index file")
	uid := flag.Int("u", 1000, "uid to drop to when started as root")
	gid := flag.Int("g", 1000, "gid to drop to when started as root")
	doJail := flag.Bool("c", false, "chroot into the webroot after binding")
	flag.Parse()

	if *port < 1 || *port > 65535 {
		fatalf("please give a correct port number (between 1 and 65535)")
	}

	cfg := server.DefaultConfig()
	cfg.Port = uint16(*port)
	cfg.Root = *webroot
	cfg.IndexFile = *index
	cfg.ServerName = *name
	cfg.ServeIndex = !*noIndex
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		fmt.Fprintf(os.Stderr, "usage: %s -p <port> -r <webroot> [-i <indexFile>] [-c] [-u <uid>] [-g <gid>]\n", os.Args[0])
		os.Exit(1)
	}

	// After the chroot the webroot becomes the filesystem root, so the
	// config the workers see must already say so.
	if *doJail {
		cfg.Root = "/"
	}

	logger := server.NewDefaultLogger()

	// Bind first: low ports need the privileges we are about to drop.
	srv, err := server.New(cfg, logger)
	if err != nil {
		fatalf("%v", err)
	}

	if *doJail {
		if err := chrootJail(*webroot); err != nil {
			fatalf("chroot jail: %v", err)
		}
	}
	if err := dropPrivileges(*uid, *gid); err != nil {
		fatalf("privilege drop: %v", err)
	}

	srv.Serve()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	if err := srv.Close(); err != nil {
		logger.Error("close failed", server.Field{Key: "error", Value: err})
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[fatal] "+format+"\n", args...)
	os.Exit(1)
}
