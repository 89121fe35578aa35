package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/cli"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	code := cli.Execute(ctx, cli.DefaultDeps(info), os.Args[1:])
	stop()
	os.Exit(code)
}
