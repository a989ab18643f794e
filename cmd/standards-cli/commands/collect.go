package commands

import (
	"fmt"
	"time"

	"standards-backend/lib/configutil"
	"standards-backend/lib/configutil/sqlitecfg"
	"standards-backend/lib/scrapers/casenet"
	"standards-backend/lib/scrapers/cpalms"
	"standards-backend/lib/serviceutil"
	"standards-backend/services/standards"
	"standards-backend/services/standards/db"

	"github.com/spf13/cobra"
)

type ScrapeConfig struct {
	BaseUrl    string           `json:"base_url"`
	SearchPath string           `json:"search_path"`
	Selectors  cpalms.Selectors `json:"selectors"`
}

type CaseConfig struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	// jurisdiction matching against framework document titles is
	// case-sensitive unless this is set
	CaseInsensitiveMatch bool `json:"case_insensitive_match"`
}

type Config struct {
	State        string   `json:"state"`
	Jurisdiction string   `json:"jurisdiction"`
	Subjects     []string `json:"subjects"`
	Grades       []string `json:"grades"`
	// wait between unit fetches in scrape mode, may be fractional
	DelaySeconds *float64         `json:"delay_seconds"`
	Database     sqlitecfg.Struct `json:"database"`
	Scrape       ScrapeConfig     `json:"scrape"`
	Case         CaseConfig       `json:"case"`
}

func init() {
	rootCmd.AddCommand(collectCmd)
}

func (c Config) delay() (time.Duration, error) {
	if c.DelaySeconds == nil {
		return time.Second * 2, nil
	}
	if *c.DelaySeconds < 0 {
		return 0, fmt.Errorf("delay_seconds cannot be negative: %v", *c.DelaySeconds)
	}
	return time.Duration(*c.DelaySeconds * float64(time.Second)), nil
}

func buildSource(config Config) (standards.Source, error) {
	if config.Case.ApiKey != "" {
		if config.Case.BaseUrl == "" {
			return nil, fmt.Errorf("case.api_key is set but case.base_url is not")
		}
		client := casenet.NewClient(casenet.ClientOptions{
			BaseUrl: config.Case.BaseUrl,
			ApiKey:  config.Case.ApiKey,
		})
		return standards.NewCaseSource(
			client,
			config.State,
			config.Jurisdiction,
			config.Case.CaseInsensitiveMatch,
		), nil
	}
	if config.Case.BaseUrl != "" {
		return nil, fmt.Errorf("case.base_url is set but case.api_key is not")
	}

	delay, err := config.delay()
	if err != nil {
		return nil, err
	}
	baseUrl := config.Scrape.BaseUrl
	if baseUrl == "" {
		baseUrl = "https://www.cpalms.org"
	}
	client, err := cpalms.NewClient(cpalms.ClientOptions{
		BaseUrl:    baseUrl,
		SearchPath: config.Scrape.SearchPath,
		Selectors:  config.Scrape.Selectors,
		Delay:      delay,
	})
	if err != nil {
		return nil, err
	}
	return standards.NewScrapeSource(
		client,
		config.State,
		standards.ResolveSubjects(config.Subjects),
		config.Grades,
	), nil
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collects standards from the configured source and writes them to the database.",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if config.State == "" {
			config.State = "FL"
		}
		if config.Jurisdiction == "" {
			config.Jurisdiction = "Florida"
		}
		if config.Database.File == "" && config.Database.Url == "" {
			config.Database.File = "standards.db"
		}

		source, err := buildSource(config)
		if err != nil {
			serviceutil.Fatal("failed to initialize source", err)
		}

		database, err := config.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		collector := standards.NewCollector(source, standards.NewStore(database))

		t1 := time.Now()
		total, err := collector.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("collection failed", err)
		}
		t2 := time.Now()

		fmt.Printf("collected %d standards in %.1fs\n", total, t2.Sub(t1).Seconds())
	},
}
