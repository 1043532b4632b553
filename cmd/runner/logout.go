package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickrun/internal/kv"
	"github.com/vovakirdan/stickrun/internal/storage"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored username",
	Long:  `Remove the stored username so the next run starts on the login screen. Best scores are kept.`,
	Args:  cobra.NoArgs,
	Run:   runLogout,
}

func runLogout(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	name, ok, err := store.Get(ctx, kv.KeyUsername)
	if err != nil || !ok {
		fmt.Println("Not logged in.")
		return
	}

	if err := store.Remove(ctx, kv.KeyUsername); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logged out %s.\n", name)
}
