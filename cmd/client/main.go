package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-steward-keeper/internal/client"
	"github.com/MKhiriev/go-steward-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := client.NewRootCommand(buildInfo())

	if err := root.ExecuteContext(context.Background()); err != nil {
		client.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
