// Package main implements a small CLI for exercising the catalog service:
// request a signed upload URL, push a local file to storage, and browse
// the public catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/clients"
	"github.com/deepencoding/yt-clone-catalog/internal/models/storagekey"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/k0kubun/pp/v3"
)

const watchInterval = 5 * time.Second

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	endpoint := fs.String("endpoint", "http://127.0.0.1:8000", "catalog service endpoint")
	user := fs.String("user", "", "user id to act as")
	uploadPath := fs.String("upload", "", "path of a video file to upload")
	list := fs.Bool("list", false, "print the public catalog")
	watch := fs.String("watch", "", "poll the catalog until the given video id appears")
	playbackBase := fs.String("playback-base", "https://storage.googleapis.com/yt-processed-videos-deepencoding-clone", "base url for playback links")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fatal(err)
	}

	logger := log.With(log.NewStdLogger(os.Stderr), "ts", log.DefaultTimestamp)
	ctx := context.Background()

	client, cleanup, err := clients.NewCatalogClient(ctx, *endpoint, logger)
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	switch {
	case *uploadPath != "":
		if *user == "" {
			fatal(fmt.Errorf("-upload requires -user"))
		}
		if err := runUpload(ctx, client, logger, *user, *uploadPath); err != nil {
			fatal(err)
		}
	case *watch != "":
		if err := runWatch(ctx, client, *watch, *playbackBase); err != nil {
			fatal(err)
		}
	case *list:
		if err := runList(ctx, client, *playbackBase); err != nil {
			fatal(err)
		}
	default:
		fs.Usage()
		os.Exit(2)
	}
}

func runUpload(ctx context.Context, client *clients.CatalogClient, logger log.Logger, user, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("cannot determine file extension of %s", path)
	}

	resp, err := client.GenerateUploadURL(ctx, user, ext)
	if err != nil {
		return err
	}
	fmt.Printf("signed upload url issued for %s\n", resp.FileName)

	uploader := clients.NewUploader(logger)
	if err := uploader.Upload(ctx, resp.URL, path); err != nil {
		return err
	}

	fmt.Printf("uploaded; catalog entry will appear as %s once processed\n", storagekey.VideoID(resp.FileName))
	return nil
}

func runList(ctx context.Context, client *clients.CatalogClient, playbackBase string) error {
	resp, err := client.ListVideos(ctx)
	if err != nil {
		return err
	}

	printer := pp.New()
	printer.SetExportedOnly(true)
	for _, video := range resp.Videos {
		printer.Println(video)
		fmt.Printf("  playback: %s\n", storagekey.PlaybackURL(playbackBase, video.Filename))
	}
	fmt.Printf("%d video(s)\n", len(resp.Videos))
	return nil
}

func runWatch(ctx context.Context, client *clients.CatalogClient, videoID, playbackBase string) error {
	fmt.Printf("waiting for %s to finish processing...\n", videoID)
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		resp, err := client.ListVideos(ctx)
		if err != nil {
			return err
		}
		for _, video := range resp.Videos {
			if video.ID == videoID {
				fmt.Printf("processed: %s\n", storagekey.PlaybackURL(playbackBase, video.Filename))
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
