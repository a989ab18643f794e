package commands

import (
	"time"

	"standards-backend/cmd/standards-cli/utils"
	"standards-backend/lib/configutil"
	"standards-backend/lib/serviceutil"
	"standards-backend/services/standards/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reportLimit *int64

func init() {
	reportLimit = reportCmd.Flags().Int64("limit", 20, "The maximum number of rows to show per table.")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [--limit <n>]",
	Short: "Shows recently collected standards and the collection log.",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if config.Database.File == "" && config.Database.Url == "" {
			config.Database.File = "standards.db"
		}

		database, err := config.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()
		qry := db.New(database)

		count, err := qry.CountStandards(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to count standards", err)
		}

		recent, err := qry.ListRecentStandards(cmd.Context(), *reportLimit)
		if err != nil {
			serviceutil.Fatal("failed to list standards", err)
		}

		standardsTable := utils.NewTable()
		standardsTable.SetTitle("Standards (%d total)", count)
		standardsTable.AppendHeader(table.Row{"Standard", "Subject", "Grade", "Title"})
		for _, row := range recent {
			standardsTable.AppendRow(table.Row{row.StandardID, row.Subject, row.Grade, row.Title})
		}
		standardsTable.Render()

		entries, err := qry.ListRecentCollectionLog(cmd.Context(), *reportLimit)
		if err != nil {
			serviceutil.Fatal("failed to list collection log", err)
		}

		logTable := utils.NewTable()
		logTable.SetTitle("Collection log")
		logTable.AppendHeader(table.Row{"Time", "Subject", "Grade", "Status", "Records", "Notes"})
		for _, entry := range entries {
			logTable.AppendRow(table.Row{
				time.Unix(entry.Timestamp, 0).Format(time.ANSIC),
				entry.Subject,
				entry.Grade,
				entry.Status,
				entry.RecordsCollected,
				entry.Notes,
			})
		}
		logTable.Render()
	},
}
