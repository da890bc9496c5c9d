// Command publish stages deploy-time static files into the publish
// directory consumed by the hosting pipeline.
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"floorcalchub.com/floorcalc-web/internal/assets"
)

func main() {
	cmd := &cli.Command{
		Name:  "publish",
		Usage: "copy root-level static files into the publish directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "project root holding the static files",
				Value: ".",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "publish output directory",
				Value:   "publish",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log each copied file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			root := cmd.String("root")
			out := cmd.String("out")
			if err := assets.CopyStatic(root, out); err != nil {
				return err
			}
			log.WithFields(log.Fields{"root": root, "out": out}).Info("publish complete")
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("publish failed")
	}
}
