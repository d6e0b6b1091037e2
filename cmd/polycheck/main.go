package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/fatih/color"
	cli "gopkg.in/urfave/cli.v1"

	"polycheck/checker"
	"polycheck/config"
	"polycheck/coords"
)

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "Load configuration from `FILE`",
	},
	cli.Float64Flag{
		Name:  "epsilon, e",
		Usage: "Override the geometric tolerance",
	},
	cli.BoolFlag{
		Name:  "verbose, v",
		Usage: "Log every pipeline stage",
	},
}

func check(c *cli.Context) {
	path := c.Args().First()
	if path == "" {
		fmt.Println(color.RedString("Error: a coordinate file path is required"))
		cli.ShowAppHelp(c)
		return
	}

	cfg := config.Default()
	if v := c.String("config"); v != "" {
		f, err := os.Open(v)
		if err != nil {
			fmt.Println(color.RedString("Error opening config file: %s", err.Error()))
			return
		}
		err = cfg.Load(f)
		f.Close()
		if err != nil {
			fmt.Println(color.RedString("Error reading config file: %s", err.Error()))
			return
		}
	}
	if e := c.Float64("epsilon"); e > 0 {
		cfg.Geometry.Epsilon = e
	}
	if c.Bool("verbose") {
		cfg.Logging = []config.Backend{{Output: "stderr", Level: "debug"}}
	}
	if err := cfg.SetupLogging(); err != nil {
		fmt.Println(color.RedString("Error configuring logging: %s", err.Error()))
		return
	}

	report, err := checker.Run(path, cfg.Geometry.Epsilon)
	if err != nil {
		// Handled failures terminate gracefully with status 0; the message
		// names the stage that gave up.
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Println(color.RedString("Error: file not found - '%s'", path))
			fmt.Println("Exiting due to errors in reading the file.")
		case errors.Is(err, coords.ErrParse), errors.Is(err, coords.ErrShape),
			errors.Is(err, checker.ErrNoPoints):
			fmt.Println(color.RedString("Error: %s", err.Error()))
			fmt.Println("Exiting due to errors in reading the file.")
		default:
			fmt.Println(color.RedString("Error: %s", err.Error()))
			fmt.Println("Exiting due to invalid polygon data.")
		}
		return
	}

	if report.Simple {
		fmt.Println("Result: the polygon is simple (no self-intersections).")
		fmt.Printf("Winding: %s, area: %.6g\n", report.Orientation, math.Abs(report.Area))
	} else {
		fmt.Println(color.YellowString("Result: the polygon is complex (has self-intersections)."))
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "polycheck"
	app.Usage = "detect self-intersections in a polygon coordinate file"
	app.ArgsUsage = "FILE"
	app.Description = `polycheck reads a text file holding a list of (x, y) pairs, undoes the
SceneKit coordinate flip, closes the boundary, validates it and reports
whether the polygon is simple or self-intersecting.`
	app.Flags = globalFlags
	app.Action = check

	app.RunAndExitOnError()
}
