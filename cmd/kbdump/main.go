// kbdump walks a Freshdesk knowledge base and prints its category, folder,
// and article tree as JSON. Useful for smoke-testing credentials and for
// snapshotting a portal before a translation run.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/olgasafonova/freshdesk-solutions-go/solutions"
	"github.com/olgasafonova/freshdesk-solutions-go/tracing"
)

type folderNode struct {
	Folder   solutions.Folder    `json:"folder"`
	Articles []solutions.Article `json:"articles"`
}

type categoryNode struct {
	Category solutions.Category `json:"category"`
	Folders  []folderNode       `json:"folders"`
}

func main() {
	// Logging goes to stderr; stdout carries the JSON tree
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	config, err := solutions.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	client := solutions.NewClient(config, logger)

	categories, err := client.ListCategories(ctx)
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}

	tree := make([]categoryNode, 0, len(categories))
	for _, cat := range categories {
		node := categoryNode{Category: cat}

		folders, err := client.ListFolders(ctx, cat.ID)
		if err != nil {
			log.Fatalf("Failed to list folders for category %d: %v", cat.ID, err)
		}

		for _, folder := range folders {
			articles, err := client.ListArticles(ctx, folder.ID)
			if err != nil {
				log.Fatalf("Failed to list articles for folder %d: %v", folder.ID, err)
			}
			node.Folders = append(node.Folders, folderNode{Folder: folder, Articles: articles})
		}

		tree = append(tree, node)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		log.Fatalf("Failed to encode tree: %v", err)
	}

	logger.Info("Knowledge base dumped", "categories", len(tree))
}
