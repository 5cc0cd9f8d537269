package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"catalog-export/internal/config"
	"catalog-export/internal/export"
	"catalog-export/internal/httpx"
	"catalog-export/internal/providers"
	"catalog-export/internal/providers/coursera"
	"catalog-export/internal/sftpclient"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	log.Printf("exportcsv: starting catalog import from %s", cfg.CourseraBaseURL)

	imp := coursera.Provider{C: coursera.New(courseraOptions(cfg))}

	outPath, err := run(context.Background(), imp, cfg.OutputDir, time.Now())
	if err != nil {
		log.Fatal(err)
	}

	if cfg.SFTPUpload {
		upCfg := sftpConfig(cfg)
		remoteName := filepath.Base(outPath)

		upCtx, upCancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFile(upCtx, upCfg, outPath, remoteName); err != nil {
			log.Fatal(err)
		}
		log.Printf("uploaded to sftp://%s%s/%s", upCfg.Addr(), upCfg.RemoteDir, remoteName)
	}
}

// run imports every record, then writes them in one pass. Nothing is written
// when the import fails.
func run(ctx context.Context, imp providers.CourseImporter, outDir string, now time.Time) (string, error) {
	records, err := imp.ImportCourses(ctx)
	if err != nil {
		return "", fmt.Errorf("%s import: %w", imp.Name(), err)
	}

	outPath := export.CourseCSVPath(outDir, now)
	if err := export.WriteCourseCSVFile(outPath, records); err != nil {
		return "", err
	}

	log.Printf("wrote %d courses to %s", len(records), outPath)
	return outPath, nil
}

func courseraOptions(cfg config.Config) coursera.Options {
	retry := httpx.NoRetry()
	if cfg.CourseraMaxAttempts > 1 {
		retry = httpx.DefaultRetryConfig()
		retry.MaxAttempts = cfg.CourseraMaxAttempts
	}
	return coursera.Options{
		BaseURL:          cfg.CourseraBaseURL,
		PrimaryLanguages: cfg.CourseraPrimaryLanguages,
		Limit:            cfg.CourseraResultLimit,
		Retry:            retry,
		Timeout:          cfg.CourseraHTTPTimeout,
	}
}

func sftpConfig(cfg config.Config) sftpclient.Config {
	return sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		KnownHostsFile:        cfg.SFTPKnownHosts,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}
}
