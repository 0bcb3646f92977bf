package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"papertrader/src/database"
	"papertrader/src/quotes"
	"papertrader/src/server"
	"papertrader/src/trading"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "Papertrader CMD"
	app.Usage = "The papertrader command line interface"

	app.Commands = []cli.Command{
		serveCMD,
		migrateCMD,
		quoteCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	serveCMD = cli.Command{
		Name:        "serve",
		Usage:       "run the HTTP API",
		Action:      serveAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Run the trading HTTP API`,
	}
	migrateCMD = cli.Command{
		Name:        "migrate",
		Usage:       "run database migrations",
		Action:      migrateAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Connect to the database and run schema migrations`,
	}
	quoteCMD = cli.Command{
		Name:        "quote",
		Usage:       "fetch the latest price for a ticker",
		Action:      quoteAction,
		ArgsUsage:   "<ticker>",
		Flags:       []cli.Flag{},
		Description: `Fetch the latest closing price for a ticker and print it`,
	}
)

func serveAction(_ *cli.Context) error {

	logrus.Info("Starting serve CMD")
	logrus.WithField("cmd", "serve")

	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	server.StartServer(server.GetConfig().Port)

	return nil
}

func migrateAction(_ *cli.Context) error {

	logrus.Info("Starting migrate CMD")

	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Error("Migration failed")
		return err
	}

	return nil
}

func quoteAction(c *cli.Context) error {

	ticker := c.Args().First()
	if ticker == "" {
		return errors.New("ticker argument is required")
	}

	config := quotes.GetConfig()
	client := quotes.NewYahooClient(config.BaseURL, config.Timeout)

	price, err := client.LatestPrice(context.Background(), ticker)
	if err != nil {
		if errors.Is(err, trading.ErrSymbolNotFound) {
			return fmt.Errorf("no quote available for ticker: %s", ticker)
		}
		return err
	}

	fmt.Printf("%s %.2f\n", ticker, price)
	return nil
}
