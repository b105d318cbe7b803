package main

import (
	"chat-presence/repositories"
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func buildInspectCmd() *cobra.Command {
	var (
		dbPath string
		prefix string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the presence store as a table",
		Long: `Dump Badger records under a key prefix: notif: for notifications,
dm: for direct messages, friend: and freq: for the friendship graph.

The store is opened read-only, the node may keep running.`,
		Example: `  chat-presence inspect --db ./data --prefix dm: --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openReadOnly(dbPath)
			if err != nil {
				return fmt.Errorf("error while opening Badger: %w", err)
			}
			defer db.Close()
			return inspect(cmd.OutOrStdout(), db, prefix, limit)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", database.DefaultPath, "Path to badger DB")
	cmd.Flags().StringVar(&prefix, "prefix", "notif:", "Prefix to scan")
	cmd.Flags().IntVar(&limit, "limit", 200, "Maximum number of rows")
	return cmd
}

func inspect(out io.Writer, db *badger.DB, prefix string, limit int) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Key", "Type", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes) && rows < limit; it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				row := repositories.InspectMapper(key, v)
				table.Append([]string{key, row.Type, row.Detail})
				return nil
			})
			if err != nil {
				return err
			}
			rows++
		}
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	_, err = fmt.Fprintf(out, "%d row(s)\n", rows)
	return err
}

func openReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A crashed node leaves the value log dirty, a writable open truncates it
		repaired, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repaired.Close()
		return badger.Open(opts)
	}
	return db, err
}
